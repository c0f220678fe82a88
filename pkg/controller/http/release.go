package http

import (
	"context"
	"net/http"

	"github.com/m-mizutani/mekupdater/pkg/domain/interfaces"
	"github.com/m-mizutani/mekupdater/pkg/domain/model"
	"github.com/m-mizutani/mekupdater/pkg/utils/async"
)

// ResultResponse is the JSON body of every release endpoint
type ResultResponse[T any] struct {
	Outcome model.Outcome `json:"outcome"`
	Message string        `json:"message,omitempty"`
	Value   *T            `json:"value,omitempty"`
}

// ReleaseHandler serves repository and release results
type ReleaseHandler struct {
	client   interfaces.RepositoryClient
	reporter interfaces.FailureReporter
}

// NewReleaseHandler creates a new ReleaseHandler. reporter may be nil.
func NewReleaseHandler(client interfaces.RepositoryClient, reporter interfaces.FailureReporter) *ReleaseHandler {
	return &ReleaseHandler{
		client:   client,
		reporter: reporter,
	}
}

// HandleRepository serves the repository document
func (h *ReleaseHandler) HandleRepository(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, "repository info", h.client.GetRepositoryInfo(r.Context()))
}

// HandleReleases serves the release list
func (h *ReleaseHandler) HandleReleases(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, "releases", h.client.GetReleases(r.Context()))
}

// HandleLatestRelease serves the latest release
func (h *ReleaseHandler) HandleLatestRelease(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, "latest release", h.client.GetLatestRelease(r.Context()))
}

// HandleLatestReleaseAssets serves the assets of the latest release
func (h *ReleaseHandler) HandleLatestReleaseAssets(w http.ResponseWriter, r *http.Request) {
	writeResult(h, w, r, "latest release assets", h.client.GetLatestReleaseAssets(r.Context()))
}

func writeResult[T any](h *ReleaseHandler, w http.ResponseWriter, r *http.Request, operation string, result model.OperationResult[T]) {
	if !result.Outcome.IsSuccess() && h.reporter != nil {
		reporter := h.reporter
		async.Dispatch(r.Context(), func(ctx context.Context) error {
			reporter.ReportFailure(ctx, operation, result.Outcome, result.Message)
			return nil
		})
	}

	writeJSON(w, r, StatusCode(result.Outcome), &ResultResponse[T]{
		Outcome: result.Outcome,
		Message: result.Message,
		Value:   result.Value,
	})
}

// StatusCode maps an Outcome to the HTTP status served for it
func StatusCode(outcome model.Outcome) int {
	switch outcome {
	case model.OutcomeSuccess:
		return http.StatusOK
	case model.OutcomeTimedOut:
		return http.StatusGatewayTimeout
	case model.OutcomeUnsuccessfulRequest, model.OutcomeNetworkError:
		return http.StatusBadGateway
	}
	if outcome.IsDecodeFault() {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
