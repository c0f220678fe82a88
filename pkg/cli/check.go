package cli

import (
	"context"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mekupdater/pkg/cli/config"
	"github.com/m-mizutani/mekupdater/pkg/domain/types"
	"github.com/m-mizutani/mekupdater/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var (
		fileCfg   config.File
		githubCfg config.GitHub
		out       output
		current   string
	)

	flags := slices.Concat(fileCfg.Flags(), githubCfg.Flags(), out.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "current",
			Usage:       "Version to compare with the latest release",
			Value:       types.Version,
			Destination: &current,
			Sources:     cli.EnvVars("MEKUPDATER_CURRENT_VERSION"),
		},
	})

	return &cli.Command{
		Name:  "check",
		Usage: "Check whether a newer release is available",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := newClient(ctx, &fileCfg, &githubCfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			uc := usecase.NewUpdateCheck(client)
			result := uc.Check(ctx, current)

			w := c.Root().Writer
			if out.JSON {
				if err := writeJSON(w, result); err != nil {
					return err
				}
			} else {
				printOutcome(w, "update check", result.Outcome.IsSuccess(), result.Outcome.String(), result.Message)
				if result.Outcome.IsSuccess() {
					printField(w, "Current", result.CurrentVersion)
					printField(w, "Latest", result.LatestVersion)
					if result.UpdateAvailable {
						printField(w, "Status", noticeColor.Sprint("update available"))
					} else {
						printField(w, "Status", successColor.Sprint("up to date"))
					}
				}
			}

			if !result.Outcome.IsSuccess() {
				return goerr.New("update check failed",
					goerr.V("outcome", result.Outcome),
					goerr.V("message", result.Message),
				)
			}
			return nil
		},
	}
}
