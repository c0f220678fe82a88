package config

import "github.com/urfave/cli/v3"

// DefaultAddr is the listen address used when none is configured
const DefaultAddr = "localhost:8080"

// Server holds server configuration
type Server struct {
	Addr string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address (default: " + DefaultAddr + ")",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("MEKUPDATER_ADDR"),
		},
	}
}

// Merge fills the address from file values, then falls back to DefaultAddr
func (c *Server) Merge(values *FileValues) {
	if values != nil {
		fillString(&c.Addr, values.Server.Addr)
	}
	fillString(&c.Addr, DefaultAddr)
}
