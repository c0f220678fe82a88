package cli

import (
	"context"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mekupdater/pkg/cli/config"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
	"github.com/m-mizutani/mekupdater/pkg/domain/types"
	"github.com/m-mizutani/mekupdater/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdFindSetup() *cli.Command {
	var (
		fileCfg   config.File
		githubCfg config.GitHub
		out       output
		root      string
	)

	flags := slices.Concat(fileCfg.Flags(), githubCfg.Flags(), out.Flags(), []cli.Flag{
		&cli.StringFlag{
			Name:        "root",
			Usage:       "Folder the release archive was extracted into",
			Required:    true,
			Destination: &root,
			Sources:     cli.EnvVars("MEKUPDATER_EXTRACTION_ROOT"),
		},
	})

	return &cli.Command{
		Name:    "find-setup",
		Aliases: []string{"setup"},
		Usage:   "Locate the installer inside an extracted release archive",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			values, err := fileCfg.Load()
			if err != nil {
				return err
			}
			if err := githubCfg.Merge(values); err != nil {
				return err
			}

			extractionRoot, err := types.NewDirectoryPath(root)
			if err != nil {
				return goerr.Wrap(err, "invalid extraction root")
			}
			info, err := model.NewSetupSearchInfo(extractionRoot, githubCfg.Owner, githubCfg.Repo)
			if err != nil {
				return err
			}

			finder := usecase.NewSetupPathFinder(usecase.WithLogger(ctxlog.From(ctx)))
			result := finder.Find(info)

			w := c.Root().Writer
			if out.JSON {
				if err := writeJSON(w, &result); err != nil {
					return err
				}
			} else {
				printOutcome(w, "setup search", result.Success, result.Code.String(), result.Message)
				if result.Success {
					printField(w, "Installer", result.InstallerPath.String())
				}
			}

			if !result.Success {
				return goerr.New("setup file not found",
					goerr.V("code", result.Code),
					goerr.V("message", result.Message),
				)
			}
			return nil
		},
	}
}
