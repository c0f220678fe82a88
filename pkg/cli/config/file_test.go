package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mekupdater/pkg/cli/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mekupdater.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleConfig = `
[github]
owner = "Meklopsi"
repo = "MekUpdater"
api_url = "http://127.0.0.1:9000"
user_agent = "mek-test"
timeout = "5s"

[server]
addr = "0.0.0.0:9090"

[sentry]
dsn = "https://public@sentry.example.com/1"
environment = "staging"
`

func TestFile_Load(t *testing.T) {
	t.Run("empty path yields empty values", func(t *testing.T) {
		var f config.File
		values, err := f.Load()
		gt.NoError(t, err)
		gt.Equal(t, values.GitHub.Owner, "")
		gt.Equal(t, values.Server.Addr, "")
	})

	t.Run("reads every section", func(t *testing.T) {
		f := config.File{Path: writeConfig(t, sampleConfig)}
		values, err := f.Load()
		gt.NoError(t, err)
		gt.Equal(t, values.GitHub.Owner, "Meklopsi")
		gt.Equal(t, values.GitHub.Repo, "MekUpdater")
		gt.Equal(t, values.GitHub.APIURL, "http://127.0.0.1:9000")
		gt.Equal(t, values.GitHub.UserAgent, "mek-test")
		gt.Equal(t, values.GitHub.Timeout, "5s")
		gt.Equal(t, values.Server.Addr, "0.0.0.0:9090")
		gt.Equal(t, values.Sentry.DSN, "https://public@sentry.example.com/1")
		gt.Equal(t, values.Sentry.Environment, "staging")
	})

	t.Run("missing file", func(t *testing.T) {
		f := config.File{Path: filepath.Join(t.TempDir(), "absent.toml")}
		_, err := f.Load()
		gt.Error(t, err)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		f := config.File{Path: writeConfig(t, "[github]\nowner = \"a\"\ntoken = \"secret\"\n")}
		_, err := f.Load()
		gt.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		f := config.File{Path: writeConfig(t, "[github\nowner = ")}
		_, err := f.Load()
		gt.Error(t, err)
	})
}

func TestGitHub_Merge(t *testing.T) {
	values, err := (&config.File{Path: writeConfig(t, sampleConfig)}).Load()
	gt.NoError(t, err)

	t.Run("file fills empty fields", func(t *testing.T) {
		var cfg config.GitHub
		gt.NoError(t, cfg.Merge(values))
		gt.Equal(t, cfg.Owner, "Meklopsi")
		gt.Equal(t, cfg.Repo, "MekUpdater")
		gt.Equal(t, cfg.APIURL, "http://127.0.0.1:9000")
		gt.Equal(t, cfg.UserAgent, "mek-test")
		gt.Equal(t, cfg.Timeout, 5*time.Second)
		gt.Equal(t, cfg.Repository(), "Meklopsi/MekUpdater")
	})

	t.Run("flag values win", func(t *testing.T) {
		cfg := config.GitHub{
			Owner:   "other",
			Timeout: time.Second,
		}
		gt.NoError(t, cfg.Merge(values))
		gt.Equal(t, cfg.Owner, "other")
		gt.Equal(t, cfg.Repo, "MekUpdater")
		gt.Equal(t, cfg.Timeout, time.Second)
	})

	t.Run("nil values", func(t *testing.T) {
		cfg := config.GitHub{Owner: "a"}
		gt.NoError(t, cfg.Merge(nil))
		gt.Equal(t, cfg.Owner, "a")
	})

	t.Run("invalid timeout", func(t *testing.T) {
		bad, err := (&config.File{Path: writeConfig(t, "[github]\ntimeout = \"soon\"\n")}).Load()
		gt.NoError(t, err)

		var cfg config.GitHub
		gt.Error(t, cfg.Merge(bad))
	})
}

func TestGitHub_NewClient(t *testing.T) {
	t.Run("builds repository address", func(t *testing.T) {
		cfg := config.GitHub{
			Owner:  "Meklopsi",
			Repo:   "MekUpdater",
			APIURL: "http://127.0.0.1:9000",
		}
		client, err := cfg.NewClient(nil)
		gt.NoError(t, err)
		defer client.Close()
		gt.Equal(t, client.BaseAddress(), "http://127.0.0.1:9000/repos/Meklopsi/MekUpdater")
	})

	t.Run("default api root", func(t *testing.T) {
		cfg := config.GitHub{Owner: "Meklopsi", Repo: "MekUpdater"}
		client, err := cfg.NewClient(nil)
		gt.NoError(t, err)
		defer client.Close()
		gt.Equal(t, client.BaseAddress(), "https://api.github.com/repos/Meklopsi/MekUpdater")
	})

	t.Run("owner is required", func(t *testing.T) {
		cfg := config.GitHub{Repo: "MekUpdater"}
		_, err := cfg.NewClient(nil)
		gt.Error(t, err)
	})
}

func TestServer_Merge(t *testing.T) {
	t.Run("default address", func(t *testing.T) {
		var cfg config.Server
		cfg.Merge(nil)
		gt.Equal(t, cfg.Addr, config.DefaultAddr)
	})

	t.Run("file address", func(t *testing.T) {
		values, err := (&config.File{Path: writeConfig(t, sampleConfig)}).Load()
		gt.NoError(t, err)

		var cfg config.Server
		cfg.Merge(values)
		gt.Equal(t, cfg.Addr, "0.0.0.0:9090")
	})
}

func TestSentry(t *testing.T) {
	t.Run("disabled without dsn", func(t *testing.T) {
		var cfg config.Sentry
		gt.False(t, cfg.Enabled())
		reporter, err := cfg.NewReporter()
		gt.NoError(t, err)
		gt.True(t, reporter == nil)
	})

	t.Run("enabled from file", func(t *testing.T) {
		values, err := (&config.File{Path: writeConfig(t, sampleConfig)}).Load()
		gt.NoError(t, err)

		var cfg config.Sentry
		cfg.Merge(values)
		gt.True(t, cfg.Enabled())
		gt.Equal(t, cfg.Environment, "staging")

		reporter, err := cfg.NewReporter()
		gt.NoError(t, err)
		gt.NotNil(t, reporter)
	})
}
