package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mekupdater/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds configuration of the repository API client
type GitHub struct {
	Owner     string
	Repo      string
	APIURL    string
	UserAgent string
	Timeout   time.Duration
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner",
			Destination: &c.Owner,
			Sources:     cli.EnvVars("MEKUPDATER_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Destination: &c.Repo,
			Sources:     cli.EnvVars("MEKUPDATER_REPO"),
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "GitHub API root (default: " + github.DefaultAPIURL + ")",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("MEKUPDATER_API_URL"),
		},
		&cli.StringFlag{
			Name:        "user-agent",
			Usage:       "User-Agent header sent with every request (default: " + github.DefaultUserAgent + ")",
			Destination: &c.UserAgent,
			Sources:     cli.EnvVars("MEKUPDATER_USER_AGENT"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Per-request timeout (default: " + github.DefaultTimeout.String() + ")",
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("MEKUPDATER_TIMEOUT"),
		},
	}
}

// Merge fills fields left empty by flags and environment from file values
func (c *GitHub) Merge(values *FileValues) error {
	if values == nil {
		return nil
	}

	fillString(&c.Owner, values.GitHub.Owner)
	fillString(&c.Repo, values.GitHub.Repo)
	fillString(&c.APIURL, values.GitHub.APIURL)
	fillString(&c.UserAgent, values.GitHub.UserAgent)

	if c.Timeout == 0 && values.GitHub.Timeout != "" {
		timeout, err := time.ParseDuration(values.GitHub.Timeout)
		if err != nil {
			return goerr.Wrap(err, "invalid timeout in config file", goerr.V("timeout", values.GitHub.Timeout))
		}
		c.Timeout = timeout
	}

	return nil
}

// Repository returns "owner/repo"
func (c *GitHub) Repository() string {
	return c.Owner + "/" + c.Repo
}

// NewClient builds a repository client from the configuration
func (c *GitHub) NewClient(logger *slog.Logger) (*github.Client, error) {
	opts := []github.Option{
		github.WithLogger(logger),
	}
	if c.APIURL != "" {
		opts = append(opts, github.WithAPIURL(c.APIURL))
	}
	if c.UserAgent != "" {
		opts = append(opts, github.WithUserAgent(c.UserAgent))
	}
	if c.Timeout > 0 {
		opts = append(opts, github.WithTimeout(c.Timeout))
	}

	client, err := github.NewClient(c.Owner, c.Repo, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}
	return client, nil
}
