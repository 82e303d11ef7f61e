package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advocates/internal/config"
	"advocates/internal/eventbus"
	"advocates/internal/logging"
)

// configEventWait bounds how long a config command waits for its event to be logged
const configEventWait = time.Second

func newConfigCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the config file",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigInitCmd(root), newConfigShowCmd(root))
	return cmd
}

func newConfigInitCmd(root *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newConfigSession(root)
			if err != nil {
				return err
			}
			defer s.close()

			path := s.svc.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}
			if err := s.svc.Save(config.DefaultConfig()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			s.wait(cmd.Context())

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect, defaults included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newConfigSession(root)
			if err != nil {
				return err
			}
			defer s.close()

			_, statErr := os.Stat(s.svc.Path())
			cfg, err := s.svc.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			// Load only announces files that exist
			if statErr == nil {
				s.wait(cmd.Context())
			}

			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// configSession is a config service bound to a bus whose config events are logged
type configSession struct {
	svc    config.ConfigService
	bus    eventbus.EventBus
	logger *zap.Logger
	seen   chan struct{}
}

func newConfigSession(root *rootFlags) (*configSession, error) {
	// The file may be missing or broken, so log with the defaults
	logger, err := logging.New(config.DefaultConfig().Logging, logging.SinkStderr)
	if err != nil {
		return nil, err
	}

	path := root.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	bus := eventbus.New(logger)
	s := &configSession{
		svc:    config.NewConfigServiceWithBus(path, bus),
		bus:    bus,
		logger: logger,
		seen:   make(chan struct{}, 2),
	}

	record := func(e eventbus.DomainEvent) {
		switch ev := e.(type) {
		case eventbus.ConfigLoadedEvent:
			logger.Info("config loaded", zap.String("path", ev.Path))
		case eventbus.ConfigSavedEvent:
			logger.Info("config saved", zap.String("path", ev.Path))
		}
		select {
		case s.seen <- struct{}{}:
		default:
		}
	}
	bus.Subscribe(eventbus.EventConfigLoaded, record)
	bus.Subscribe(eventbus.EventConfigSaved, record)

	return s, nil
}

// wait gives the bus a chance to deliver the config event before close discards it
func (s *configSession) wait(ctx context.Context) {
	timer := time.NewTimer(configEventWait)
	defer timer.Stop()

	select {
	case <-s.seen:
	case <-ctx.Done():
	case <-timer.C:
		s.logger.Warn("config event not delivered in time", zap.Duration("wait", configEventWait))
	}
}

func (s *configSession) close() {
	s.bus.Close()
	_ = s.logger.Sync()
}
