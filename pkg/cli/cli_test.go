package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/mekupdater/pkg/cli"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const (
	latestJSON = `{
		"tag_name": "v1.2.0",
		"name": "MekUpdater 1.2.0",
		"html_url": "https://github.com/Meklopsi/MekUpdater/releases/tag/v1.2.0",
		"assets": [
			{"name": "MekUpdater.zip", "browser_download_url": "https://example.com/MekUpdater.zip", "size": 2048}
		]
	}`

	releasesJSON = `[
		{"tag_name": "v1.2.0"},
		{"tag_name": "v1.2.0-rc1", "prerelease": true}
	]`

	repositoryJSON = `{
		"full_name": "Meklopsi/MekUpdater",
		"description": "Release updater",
		"default_branch": "main",
		"html_url": "https://github.com/Meklopsi/MekUpdater"
	}`
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	routes := map[string]string{
		"/repos/Meklopsi/MekUpdater":                 repositoryJSON,
		"/repos/Meklopsi/MekUpdater/releases":        releasesJSON,
		"/repos/Meklopsi/MekUpdater/releases/latest": latestJSON,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("Not Found"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := cli.NewApp(&buf)
	err := app.Run(context.Background(), append([]string{"mekupdater"}, args...))
	return buf.String(), err
}

func repoFlags(apiURL string) []string {
	return []string{"--owner", "Meklopsi", "--repo", "MekUpdater", "--api-url", apiURL}
}

func TestReleaseCommands(t *testing.T) {
	server := newAPIServer(t)

	t.Run("latest", func(t *testing.T) {
		out, err := run(t, append([]string{"latest"}, repoFlags(server.URL)...)...)
		gt.NoError(t, err)
		gt.String(t, out).Contains("latest release: success")
		gt.String(t, out).Contains("v1.2.0")
	})

	t.Run("repo", func(t *testing.T) {
		out, err := run(t, append([]string{"repo"}, repoFlags(server.URL)...)...)
		gt.NoError(t, err)
		gt.String(t, out).Contains("Meklopsi/MekUpdater")
		gt.String(t, out).Contains("main")
	})

	t.Run("releases", func(t *testing.T) {
		out, err := run(t, append([]string{"releases"}, repoFlags(server.URL)...)...)
		gt.NoError(t, err)
		gt.String(t, out).Contains("v1.2.0-rc1 (prerelease)")
	})

	t.Run("assets as json", func(t *testing.T) {
		out, err := run(t, append([]string{"assets", "--json"}, repoFlags(server.URL)...)...)
		gt.NoError(t, err)

		var resp struct {
			Outcome model.Outcome `json:"outcome"`
			Value   []model.Asset `json:"value"`
		}
		gt.NoError(t, json.Unmarshal([]byte(out), &resp))
		gt.Equal(t, resp.Outcome, model.OutcomeSuccess)
		gt.Equal(t, len(resp.Value), 1)
		gt.Equal(t, resp.Value[0].Name, "MekUpdater.zip")
	})

	t.Run("failed outcome is an error", func(t *testing.T) {
		args := []string{"latest", "--owner", "Meklopsi", "--repo", "Missing", "--api-url", server.URL}
		out, err := run(t, args...)
		gt.Error(t, err)
		gt.String(t, out).Contains("latest release: unsuccessful-request")
		gt.String(t, out).Contains("Status code: '404")
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := run(t, "latest", "--repo", "MekUpdater", "--api-url", server.URL)
		gt.Error(t, err)
	})

	t.Run("repository from config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mekupdater.toml")
		content := "[github]\nowner = \"Meklopsi\"\nrepo = \"MekUpdater\"\napi_url = \"" + server.URL + "\"\n"
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		out, err := run(t, "latest", "--config", path)
		gt.NoError(t, err)
		gt.String(t, out).Contains("v1.2.0")
	})
}

func TestCheckCommand(t *testing.T) {
	server := newAPIServer(t)

	t.Run("update available", func(t *testing.T) {
		out, err := run(t, append([]string{"check", "--current", "1.0.0"}, repoFlags(server.URL)...)...)
		gt.NoError(t, err)
		gt.String(t, out).Contains("update available")
		gt.String(t, out).Contains("1.2.0")
	})

	t.Run("up to date", func(t *testing.T) {
		out, err := run(t, append([]string{"check", "--current", "v1.2.0"}, repoFlags(server.URL)...)...)
		gt.NoError(t, err)
		gt.String(t, out).Contains("up to date")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, append([]string{"check", "--json", "--current", "1.1.9"}, repoFlags(server.URL)...)...)
		gt.NoError(t, err)

		var result model.UpdateCheckResult
		gt.NoError(t, json.Unmarshal([]byte(out), &result))
		gt.True(t, result.UpdateAvailable)
		gt.Equal(t, result.LatestVersion, "1.2.0")
		gt.Equal(t, result.CurrentVersion, "1.1.9")
	})
}

func TestFindSetupCommand(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "Meklopsi-MekUpdater-1a2b3c4")
	gt.NoError(t, os.Mkdir(folder, 0o755))
	gt.NoError(t, os.WriteFile(filepath.Join(folder, "README.md"), []byte("readme"), 0o600))
	gt.NoError(t, os.WriteFile(filepath.Join(folder, "MekUpdaterSetup.exe"), []byte("MZ"), 0o600))

	t.Run("found", func(t *testing.T) {
		out, err := run(t, "find-setup", "--owner", "Meklopsi", "--repo", "MekUpdater", "--root", root)
		gt.NoError(t, err)
		gt.String(t, out).Contains("setup search: success")
		gt.String(t, out).Contains(filepath.Join(folder, "MekUpdaterSetup.exe"))
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "find-setup", "--json", "--owner", "Meklopsi", "--repo", "MekUpdater", "--root", root)
		gt.NoError(t, err)

		var result model.SetupPathFinderResult
		gt.NoError(t, json.Unmarshal([]byte(out), &result))
		gt.True(t, result.Success)
		gt.Equal(t, result.Code, model.SetupPathSuccess)
	})

	t.Run("no matching folder", func(t *testing.T) {
		out, err := run(t, "find-setup", "--owner", "Meklopsi", "--repo", "Other", "--root", root)
		gt.Error(t, err)
		gt.String(t, out).Contains("no-matching-folder")
	})

	t.Run("root is required", func(t *testing.T) {
		_, err := run(t, "find-setup", "--owner", "Meklopsi", "--repo", "MekUpdater")
		gt.Error(t, err)
	})
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "verbose", "find-setup", "--owner", "a", "--repo", "b", "--root", t.TempDir())
	gt.Error(t, err)
}
