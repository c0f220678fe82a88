package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mekupdater/pkg/domain/interfaces"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

// Reporter sends failed operation outcomes to Sentry as warning messages
type Reporter struct {
	hub *sentry.Hub
}

var _ interfaces.FailureReporter = (*Reporter)(nil)

// NewReporter creates a Reporter with its own Sentry hub
func NewReporter(options sentry.ClientOptions) (*Reporter, error) {
	client, err := sentry.NewClient(options)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Sentry client")
	}

	return &Reporter{
		hub: sentry.NewHub(client, sentry.NewScope()),
	}, nil
}

// ReportFailure captures one failed outcome
func (r *Reporter) ReportFailure(ctx context.Context, operation string, outcome model.Outcome, message string) {
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelWarning)
		scope.SetTag("operation", operation)
		scope.SetTag("outcome", outcome.String())
		r.hub.CaptureMessage(message)
	})
}

// Flush waits until buffered events are sent or timeout passes
func (r *Reporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}
