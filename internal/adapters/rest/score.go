package rest

import (
	"encoding/json"
	"net/http"
	"strings"
)

// scoreRequest defines what the client sends us
type scoreRequest struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
}

// Score handles POST /api/score
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	// 1. Decode the Request Body
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Validate Input
	// Blank input is rejected here; the orchestrator is never invoked for it.
	song := strings.TrimSpace(req.Song)
	artist := strings.TrimSpace(req.Artist)
	if song == "" || artist == "" {
		writeError(w, http.StatusBadRequest, "song and artist are required")
		return
	}

	// 3. Call the Service (The Core Logic)
	// We pass the Context so the service can cancel the upstream call if the user disconnects.
	result := h.svc.Run(r.Context(), song, artist)

	// 4. Return the Response
	// Failures have already collapsed to the canonical report; the HTTP
	// status stays 200 because the search itself completed.
	writeJSON(w, http.StatusOK, result)
}

// CurrentReport handles GET /api/report. It returns the rendering
// contract: the current report, the raw diagnostic payload, and whether a
// search is in flight.
func (h *Handler) CurrentReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot())
}
