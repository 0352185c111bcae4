package api

import "net/http"

// Health handles GET /api/health.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"message": "OptiCode API is running",
	})
}
