// Package handlers wires the HTTP surface to the in-memory stores and
// derived-view services. Every response uses the {success, data|error}
// envelope; domain errors map to 400/404 and anything unexpected to a
// generic 500.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/pawlog/pawlog/internal/models"
	"github.com/pawlog/pawlog/internal/observability"
	"github.com/pawlog/pawlog/internal/store"
	"github.com/pawlog/pawlog/internal/validation"
)

// ActivityHandler handles activity log requests
type ActivityHandler struct {
	store *store.ActivityStore
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(s *store.ActivityStore) *ActivityHandler {
	return &ActivityHandler{store: s}
}

// RegisterRoutes registers activity routes on the given router.
// The router should already have the /activities prefix (e.g., from
// apiRouter.PathPrefix("/activities")).
func (h *ActivityHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListActivities).Methods("GET")
	r.HandleFunc("", h.CreateActivity).Methods("POST")
	r.HandleFunc("/{id}", h.DeleteActivity).Methods("DELETE")
}

const (
	// MaxPetNameLength is the maximum length for pet names
	MaxPetNameLength = 100
)

// CreateActivityRequest represents a create activity request. Duration
// is a pointer so a missing field fails required validation instead of
// defaulting to zero.
type CreateActivityRequest struct {
	PetName      string     `json:"petName" validate:"required,max=100"`
	ActivityType string     `json:"activityType" validate:"required,activity_type"`
	Duration     *float64   `json:"duration" validate:"required,gt=0"`
	DateTime     *time.Time `json:"dateTime,omitempty"`
}

// ListActivitiesResponse represents the response for listing activities
type ListActivitiesResponse struct {
	Activities []*models.Activity `json:"activities"`
	CurrentPet string             `json:"currentPet"`
}

// ListActivities returns every logged activity in insertion order along
// with the current pet
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, currentPet := h.store.List()

	respondJSON(w, http.StatusOK, ListActivitiesResponse{
		Activities: activities,
		CurrentPet: currentPet,
	})
}

// CreateActivity logs a new activity
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		// Check if error is due to request size limit
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	// Validate request
	if err := validation.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Validation failed: %s", fieldError.Error()))
				return
			}
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Validation failed")
		return
	}

	// Sanitize text input; the store trims and rejects empty names
	req.PetName = validation.SanitizeText(req.PetName)
	if len(req.PetName) > MaxPetNameLength {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Pet name exceeds maximum length of %d characters", MaxPetNameLength))
		return
	}

	activity, err := h.store.Add(req.PetName, models.ActivityType(req.ActivityType), *req.Duration, req.DateTime)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	observability.RecordActivityLogged(string(activity.Type))
	respondJSON(w, http.StatusCreated, activity)
}

// DeleteActivity removes an activity by id and returns the removed record
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid activity ID")
		return
	}

	activity, err := h.store.Delete(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, activity)
}
