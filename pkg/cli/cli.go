package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/mekupdater/pkg/cli/config"
	"github.com/m-mizutani/mekupdater/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := newApp(os.Stdout).Run(ctx, args); err != nil {
		slog.Default().Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

func newApp(w io.Writer) *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:    "mekupdater",
		Usage:   "Inspect GitHub releases and locate downloaded installers",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Writer:  w,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdRepository(),
			cmdLatestRelease(),
			cmdReleases(),
			cmdAssets(),
			cmdCheck(),
			cmdFindSetup(),
			cmdServe(),
		},
	}
}
