package config

import (
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/mekupdater/pkg/domain/types"
	sentryinfra "github.com/m-mizutani/mekupdater/pkg/infra/sentry"
	"github.com/urfave/cli/v3"
)

// Sentry holds failure reporting configuration
type Sentry struct {
	DSN         string
	Environment string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN; failures are not reported when empty",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("MEKUPDATER_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Destination: &c.Environment,
			Sources:     cli.EnvVars("MEKUPDATER_SENTRY_ENV"),
		},
	}
}

// Merge fills fields left empty by flags and environment from file values
func (c *Sentry) Merge(values *FileValues) {
	if values == nil {
		return
	}
	fillString(&c.DSN, values.Sentry.DSN)
	fillString(&c.Environment, values.Sentry.Environment)
}

// Enabled reports whether a DSN is configured
func (c *Sentry) Enabled() bool {
	return c.DSN != ""
}

// NewReporter builds a reporter. It returns nil without error when
// reporting is disabled.
func (c *Sentry) NewReporter() (*sentryinfra.Reporter, error) {
	if !c.Enabled() {
		return nil, nil
	}

	return sentryinfra.NewReporter(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Environment,
		Release:     "mekupdater@" + types.Version,
	})
}
