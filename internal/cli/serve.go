package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advocates/internal/config"
	"advocates/internal/logging"
	"advocates/internal/logic"
	"advocates/internal/seed"
	"advocates/internal/server"
	"advocates/internal/source"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the advocate directory over HTTP",
		Long: `serve exposes GET /api/advocates with the bundled sample dataset,
or with the file named by --file or [source] file in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			logger, err := logging.New(cfg.Logging, logging.SinkStderr)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store := logic.NewMemoryRecordStore()
			src, err := datasetSource(cfg.Source)
			if err != nil {
				return err
			}
			advocates, err := src.Fetch(ctx)
			if err != nil {
				return fmt.Errorf("load dataset from %s: %w", src.Name(), err)
			}
			ds := store.Replace(advocates)
			logger.Info("dataset loaded",
				zap.String("source", src.Name()),
				zap.Int("advocates", ds.Len()))

			return server.New(cfg.Server, store, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+config.DefaultConfig().Server.Addr+")")
	return cmd
}

// datasetSource serves the configured file, or the seed when there is none
func datasetSource(cfg config.SourceConfig) (source.Source, error) {
	if cfg.File != "" {
		return source.NewFileSource(cfg.File), nil
	}
	advocates, err := seed.Advocates()
	if err != nil {
		return nil, err
	}
	return source.NewStaticSource("seed", advocates), nil
}
