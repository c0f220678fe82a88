package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File holds the path of the optional TOML configuration file
type File struct {
	Path string
}

// FileValues is the content of a configuration file. Every field is
// optional; values given by flag or environment take precedence.
type FileValues struct {
	GitHub struct {
		Owner     string `toml:"owner"`
		Repo      string `toml:"repo"`
		APIURL    string `toml:"api_url"`
		UserAgent string `toml:"user_agent"`
		Timeout   string `toml:"timeout"`
	} `toml:"github"`

	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`

	Sentry struct {
		DSN         string `toml:"dsn"`
		Environment string `toml:"environment"`
	} `toml:"sentry"`
}

// Flags returns CLI flags for the configuration file
func (c *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("MEKUPDATER_CONFIG"),
		},
	}
}

// Load reads the configuration file. An unset path yields empty values.
func (c *File) Load() (*FileValues, error) {
	var values FileValues
	if c.Path == "" {
		return &values, nil
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", c.Path))
	}
	defer f.Close()

	decoder := toml.NewDecoder(f).DisallowUnknownFields()
	if err := decoder.Decode(&values); err != nil {
		return nil, goerr.Wrap(err, "failed to decode config file", goerr.V("path", c.Path))
	}

	return &values, nil
}

func fillString(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}
