package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pawlog/pawlog/internal/observability"
	"github.com/pawlog/pawlog/internal/services/insights"
	"github.com/pawlog/pawlog/internal/store"
)

// InsightsHandler serves the derived views: the daily summary and the
// evening walk reminder. Both are computed on demand from the activity
// store; nothing is cached.
type InsightsHandler struct {
	store *store.ActivityStore
	now   func() time.Time
}

// InsightsOption configures an InsightsHandler
type InsightsOption func(*InsightsHandler)

// WithInsightsClock overrides the reference time source. Used by tests
// to pin the calendar day and the reminder hour.
func WithInsightsClock(now func() time.Time) InsightsOption {
	return func(h *InsightsHandler) {
		h.now = now
	}
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(s *store.ActivityStore, opts ...InsightsOption) *InsightsHandler {
	h := &InsightsHandler{
		store: s,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes registers insight routes on the given router
func (h *InsightsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/summary", h.GetSummary).Methods("GET")
	r.HandleFunc("/reminder", h.GetReminder).Methods("GET")
}

// ReminderResponse represents the reminder evaluation result
type ReminderResponse struct {
	ShowReminder bool   `json:"showReminder"`
	Message      string `json:"message"`
	CurrentTime  string `json:"currentTime"`
}

// GetSummary returns today's activity aggregates
func (h *InsightsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	activities, _ := h.store.List()
	summary := insights.Summarize(activities, h.now())

	respondJSON(w, http.StatusOK, summary)
}

// GetReminder evaluates the evening walk reminder at the current time
func (h *InsightsHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	activities, currentPet := h.store.List()

	show, message := insights.EvaluateReminder(activities, currentPet, now)
	if show {
		observability.RecordReminderShown()
	}

	respondJSON(w, http.StatusOK, ReminderResponse{
		ShowReminder: show,
		Message:      message,
		CurrentTime:  now.Format(time.RFC3339),
	})
}
