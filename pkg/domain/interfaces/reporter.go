package interfaces

import (
	"context"

	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

// FailureReporter forwards failed operation outcomes to an external error
// tracker.
type FailureReporter interface {
	ReportFailure(ctx context.Context, operation string, outcome model.Outcome, message string)
}
