package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dabeerhasan15/sounds/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator // Dependency on the Core Service
	router *http.ServeMux         // Standard library router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator) *Handler {
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
	}

	// Register Routes
	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// It acts as a proxy, passing the request to our internal router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)
	// Score card pipeline
	h.router.HandleFunc("POST /api/score", h.Score)
	h.router.HandleFunc("GET /api/report", h.CurrentReport)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "SoundFacts is live 🎶"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func isJSONContentType(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return ct == "" || strings.HasPrefix(ct, "application/json")
}
