package handler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /health. It reports 200 unconditionally and checks no
// dependencies; use /livez and /readyz for probe-grade checks.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
