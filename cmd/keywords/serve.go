package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/api"
	"github.com/MdImranAlam678/Keyword-Extraction-NLP/internal/metrics"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the keyword extraction HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd, cfg)
			if err != nil {
				return err
			}

			extractor, err := cfg.Extraction.NewExtractor()
			if err != nil {
				return err
			}

			var m *metrics.Metrics
			if cfg.Metrics.Enabled {
				if m, err = metrics.New(); err != nil {
					return err
				}
			}

			srv, err := api.New(cfg, api.Deps{Extractor: extractor, Logger: logger, Metrics: m})
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("starting keyword service",
				slog.String("addr", srv.Addr()),
				slog.String("method", extractor.Method().String()),
				slog.String("lemmatizer", cfg.Extraction.Lemmatizer),
				slog.Bool("metrics", cfg.Metrics.Enabled),
			)

			g, gctx := errgroup.WithContext(runCtx)
			g.Go(func() error {
				return srv.ListenAndServe(gctx)
			})
			g.Go(func() error {
				<-gctx.Done()
				if runCtx.Err() != nil {
					logger.Info("shutdown requested")
				}
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}
			logger.Info("keyword service stopped")
			return nil
		},
	}

	cmd.Flags().String("host", "", "Listen host (overrides server.host)")
	cmd.Flags().Int("port", 0, "Listen port (overrides server.port)")
	addExtractionFlags(cmd)
	return cmd
}

