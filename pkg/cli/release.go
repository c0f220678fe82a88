package cli

import (
	"context"
	"io"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/mekupdater/pkg/cli/config"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
	"github.com/m-mizutani/mekupdater/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// newClient loads the config file, merges it under the flag values and
// builds the repository client.
func newClient(ctx context.Context, fileCfg *config.File, githubCfg *config.GitHub) (*github.Client, error) {
	values, err := fileCfg.Load()
	if err != nil {
		return nil, err
	}
	if err := githubCfg.Merge(values); err != nil {
		return nil, err
	}
	return githubCfg.NewClient(ctxlog.From(ctx))
}

// cmdFetch builds a command that runs one repository operation and prints
// its result.
func cmdFetch[T any](
	name, usage, operation string,
	fetch func(context.Context, *github.Client) model.OperationResult[T],
	render func(io.Writer, T),
) *cli.Command {
	var (
		fileCfg   config.File
		githubCfg config.GitHub
		out       output
	)

	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: slices.Concat(fileCfg.Flags(), githubCfg.Flags(), out.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := newClient(ctx, &fileCfg, &githubCfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return printResult(c.Root().Writer, &out, operation, fetch(ctx, client), render)
		},
	}
}

func cmdRepository() *cli.Command {
	return cmdFetch("repo", "Show repository information", "repository info",
		func(ctx context.Context, client *github.Client) model.OperationResult[model.RepositoryInfo] {
			return client.GetRepositoryInfo(ctx)
		},
		renderRepository,
	)
}

func cmdLatestRelease() *cli.Command {
	return cmdFetch("latest", "Show the latest release", "latest release",
		func(ctx context.Context, client *github.Client) model.OperationResult[model.Release] {
			return client.GetLatestRelease(ctx)
		},
		renderRelease,
	)
}

func cmdReleases() *cli.Command {
	return cmdFetch("releases", "List releases", "releases",
		func(ctx context.Context, client *github.Client) model.OperationResult[[]model.Release] {
			return client.GetReleases(ctx)
		},
		renderReleases,
	)
}

func cmdAssets() *cli.Command {
	return cmdFetch("assets", "List assets of the latest release", "latest release assets",
		func(ctx context.Context, client *github.Client) model.OperationResult[[]model.Asset] {
			return client.GetLatestReleaseAssets(ctx)
		},
		renderAssets,
	)
}

func renderRepository(w io.Writer, repo model.RepositoryInfo) {
	printField(w, "Repository", repo.FullName)
	if repo.Description != "" {
		printField(w, "Description", repo.Description)
	}
	printField(w, "Branch", repo.DefaultBranch)
	printField(w, "URL", repo.HTMLURL)
	if repo.Archived {
		printField(w, "Archived", noticeColor.Sprint("yes"))
	}
}

func renderRelease(w io.Writer, release model.Release) {
	printField(w, "Tag", release.TagName)
	if release.Name != "" {
		printField(w, "Name", release.Name)
	}
	if !release.PublishedAt.IsZero() {
		printField(w, "Published", release.PublishedAt.Format("2006-01-02 15:04:05 MST"))
	}
	printField(w, "URL", release.HTMLURL)
	printField(w, "Assets", len(release.Assets))
}

func renderReleases(w io.Writer, releases []model.Release) {
	for _, release := range releases {
		label := release.TagName
		switch {
		case release.Draft:
			label += " " + noticeColor.Sprint("(draft)")
		case release.Prerelease:
			label += " " + noticeColor.Sprint("(prerelease)")
		}
		printField(w, "Release", label)
	}
}

func renderAssets(w io.Writer, assets []model.Asset) {
	for _, asset := range assets {
		printField(w, asset.Name, asset.BrowserDownloadURL)
	}
}
