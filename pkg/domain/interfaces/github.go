package interfaces

import (
	"context"

	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

// RepositoryClient queries one repository's release metadata. Every method
// returns a classified result instead of an error.
type RepositoryClient interface {
	// GetRepositoryInfo fetches the repository document
	GetRepositoryInfo(ctx context.Context) model.OperationResult[model.RepositoryInfo]

	// GetLatestRelease fetches the latest published release
	GetLatestRelease(ctx context.Context) model.OperationResult[model.Release]

	// GetReleases fetches the list of releases
	GetReleases(ctx context.Context) model.OperationResult[[]model.Release]

	// GetLatestReleaseAssets returns the assets of the latest release
	GetLatestReleaseAssets(ctx context.Context) model.OperationResult[[]model.Asset]
}
