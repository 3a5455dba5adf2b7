package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pawlog/pawlog/internal/store"
)

// HealthHandler serves the API status endpoint and the liveness probe
type HealthHandler struct {
	activities *store.ActivityStore
	chat       *store.ChatLog
}

// NewHealthHandler creates a new health handler over the given stores
func NewHealthHandler(activities *store.ActivityStore, chat *store.ChatLog) *HealthHandler {
	return &HealthHandler{activities: activities, chat: chat}
}

// HealthStats summarizes the in-memory state for the status endpoint
type HealthStats struct {
	TotalActivities int    `json:"totalActivities"`
	ChatMessages    int    `json:"chatMessages"`
	CurrentPet      string `json:"currentPet"`
}

// HealthStatusResponse represents the API status payload
type HealthStatusResponse struct {
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	Stats     HealthStats `json:"stats"`
}

// LivenessResponse represents the liveness probe response
type LivenessResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Status handles the /api/health endpoint: a friendly message plus
// counts of everything held in memory
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthStatusResponse{
		Message:   "PawLog API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Stats: HealthStats{
			TotalActivities: h.activities.Len(),
			ChatMessages:    h.chat.Len(),
			CurrentPet:      h.activities.CurrentPet(),
		},
	})
}

// Liveness handles the /healthz endpoint for probes. It carries no
// envelope and no store reads; if the process answers, it is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(LivenessResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
