package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/mekupdater/pkg/domain/interfaces"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
	"golang.org/x/mod/semver"
)

type updateCheck struct {
	client interfaces.RepositoryClient
}

// NewUpdateCheck creates a use case comparing the running version with the
// latest release of the client's repository.
func NewUpdateCheck(client interfaces.RepositoryClient) interfaces.UpdateCheckUseCase {
	return &updateCheck{
		client: client,
	}
}

// Check fetches the latest release and compares its tag with currentVersion.
// A failed fetch is reported with the release result's Outcome and Message.
func (uc *updateCheck) Check(ctx context.Context, currentVersion string) *model.UpdateCheckResult {
	logger := ctxlog.From(ctx)
	result := uc.client.GetLatestRelease(ctx)

	check := &model.UpdateCheckResult{
		Outcome:        result.Outcome,
		Message:        result.Message,
		CurrentVersion: strings.TrimPrefix(currentVersion, "v"),
	}

	release, ok := result.Get()
	if !ok {
		return check
	}

	if !semver.IsValid(canonicalVersion(release.TagName)) {
		logger.WarnContext(ctx, "Latest release tag is not a semantic version",
			"tag_name", release.TagName,
		)
	}

	check.Release = &release
	check.LatestVersion = strings.TrimPrefix(release.TagName, "v")
	check.UpdateAvailable = IsNewerVersion(currentVersion, release.TagName)

	logger.InfoContext(ctx, "Checked for update",
		"current_version", check.CurrentVersion,
		"latest_version", check.LatestVersion,
		"update_available", check.UpdateAvailable,
	)

	return check
}

// IsNewerVersion returns true if latest is newer than current. Development
// builds and unparsable current versions are always outdated; an
// unparsable latest version never is.
func IsNewerVersion(current, latest string) bool {
	current = canonicalVersion(current)
	latest = canonicalVersion(latest)

	if !semver.IsValid(latest) {
		return false
	}
	if !semver.IsValid(current) {
		return true
	}

	return semver.Compare(latest, current) > 0
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
