// Package cli wires the advocates commands together.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advocates/internal/config"
	"advocates/internal/eventbus"
	"advocates/internal/logging"
	"advocates/internal/logic"
	"advocates/internal/seed"
	"advocates/internal/source"
	"advocates/internal/ui"
)

// BuildInfo is stamped into the binary at link time
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are shared by every command
type rootFlags struct {
	configPath string
	url        string
	file       string
	seed       bool
	debounce   time.Duration
}

// NewRootCmd builds the command tree. Running the root command starts the TUI.
func NewRootCmd(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "advocates",
		Short: "Browse and search Solace advocates",
		Long: `advocates loads the advocate directory and shows it in a searchable table.
Typing narrows the table once the query has been quiet for the debounce period.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runTUI(ctx, cfg, flags.seed)
		},
	}

	bindRootFlags(cmd, flags)
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newVersionCmd(info))

	return cmd
}

func bindRootFlags(cmd *cobra.Command, flags *rootFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&flags.file, "file", "", "read advocates from a JSON file instead of the API")

	cmd.Flags().StringVar(&flags.url, "url", "", "advocates API endpoint")
	cmd.Flags().BoolVar(&flags.seed, "seed", false, "browse the bundled sample dataset")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", 0, "quiet period before a search is applied")
	cmd.MarkFlagsMutuallyExclusive("url", "file", "seed")
}

// Execute runs the command tree and exits non-zero on failure
func Execute(info BuildInfo) {
	if err := NewRootCmd(info).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	svc := config.NewConfigService()
	if flags.configPath != "" {
		svc = config.NewConfigServiceAt(flags.configPath)
	}

	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		// An explicit path must exist
		cfg, err = svc.LoadFromPath(svc.Path())
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flags.url != "" {
		cfg.Source.URL = flags.url
		cfg.Source.File = ""
	}
	if flags.file != "" {
		cfg.Source.File = flags.file
	}
	if cmd.Flags().Changed("debounce") {
		cfg.Search.Debounce = config.Duration(flags.debounce)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSource picks the dataset source: the bundled seed, a file, or the API
func newSource(cfg config.SourceConfig, useSeed bool) (source.Source, error) {
	switch {
	case useSeed:
		advocates, err := seed.Advocates()
		if err != nil {
			return nil, err
		}
		return source.NewStaticSource("seed", advocates), nil
	case cfg.File != "":
		return source.NewFileSource(cfg.File), nil
	default:
		return source.NewHTTPSource(cfg.URL, cfg.Timeout.Std()), nil
	}
}

// forwardedEvents reach the UI program as messages
var forwardedEvents = []eventbus.EventType{
	eventbus.EventLoadStarted,
	eventbus.EventAdvocatesLoaded,
	eventbus.EventLoadFailed,
}

func runTUI(ctx context.Context, cfg *config.Config, useSeed bool) error {
	logger, err := logging.New(cfg.Logging, logging.SinkFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	src, err := newSource(cfg.Source, useSeed)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()

	store := logic.NewMemoryRecordStore()
	loader := source.NewLoader(ctx, bus, src, logger)
	defer loader.Close()

	model := ui.NewModel(ctx, ui.Options{
		Bus:    bus,
		Store:  store,
		Config: cfg,
		Logger: logger,
	})
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	for _, t := range forwardedEvents {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}
	defer bus.Subscribe(eventbus.EventFilterApplied, func(e eventbus.DomainEvent) {
		if fe, ok := e.(eventbus.FilterAppliedEvent); ok {
			logger.Debug("filter applied",
				zap.String("query", fe.Query),
				zap.Int("visible", fe.Visible),
				zap.Int("total", fe.Total))
		}
	})()

	logger.Info("starting ui", zap.String("source", src.Name()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
