package interfaces

import (
	"context"

	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

// SetupPathFinder locates the installer inside an extracted release archive
type SetupPathFinder interface {
	Find(info model.SetupSearchInfo) model.SetupPathFinderResult
}

// UpdateCheckUseCase compares the running version with the latest release
type UpdateCheckUseCase interface {
	Check(ctx context.Context, currentVersion string) *model.UpdateCheckResult
}
