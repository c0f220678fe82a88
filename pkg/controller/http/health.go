package http

import (
	"net/http"

	"github.com/m-mizutani/mekupdater/pkg/domain/model"
	"github.com/m-mizutani/mekupdater/pkg/domain/types"
)

// newHealthHandler handles health check requests
func newHealthHandler(repository string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := &model.HealthStatus{
			Status:     "healthy",
			Service:    "mekupdater",
			Version:    types.Version,
			Repository: repository,
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
