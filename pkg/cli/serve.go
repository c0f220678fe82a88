package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mekupdater/pkg/cli/config"
	controller "github.com/m-mizutani/mekupdater/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		fileCfg   config.File
		githubCfg config.GitHub
		serverCfg config.Server
		sentryCfg config.Sentry
	)

	flags := slices.Concat(fileCfg.Flags(), githubCfg.Flags(), serverCfg.Flags(), sentryCfg.Flags())

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server exposing release status",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			values, err := fileCfg.Load()
			if err != nil {
				return err
			}
			if err := githubCfg.Merge(values); err != nil {
				return err
			}
			serverCfg.Merge(values)
			sentryCfg.Merge(values)

			client, err := githubCfg.NewClient(logger)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			logger.Info("Starting mekupdater server",
				slog.String("addr", serverCfg.Addr),
				slog.String("repository", githubCfg.Repository()),
			)

			opts := []controller.Option{
				controller.WithAddr(serverCfg.Addr),
				controller.WithRepository(githubCfg.Repository()),
			}

			reporter, err := sentryCfg.NewReporter()
			if err != nil {
				return err
			}
			if reporter != nil {
				opts = append(opts, controller.WithFailureReporter(reporter))
				defer reporter.Flush(2 * time.Second)
				logger.Info("Sentry failure reporting enabled")
			}

			server, err := controller.NewServer(ctx, client, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
