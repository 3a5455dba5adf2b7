package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/pawlog/pawlog/internal/models"
	"github.com/pawlog/pawlog/internal/store"
)

var handlerNow = time.Date(2025, 6, 12, 14, 30, 0, 0, time.Local)

// newActivityRouter wires an ActivityHandler the way cmd/server does,
// on a /api/activities subrouter over a fresh store.
func newActivityRouter(t *testing.T) (*mux.Router, *store.ActivityStore) {
	t.Helper()

	s := store.NewActivityStore(store.WithClock(func() time.Time { return handlerNow }))
	r := mux.NewRouter()
	NewActivityHandler(s).RegisterRoutes(r.PathPrefix("/api/activities").Subrouter())
	return r, s
}

func TestCreateActivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		validate   func(*testing.T, map[string]any)
	}{
		{
			name: "valid walk",
			body: map[string]any{
				"petName":      "Rex",
				"activityType": "walk",
				"duration":     20,
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, body map[string]any) {
				data, ok := body["data"].(map[string]any)
				if !ok {
					t.Fatal("Expected data object in envelope")
				}
				if data["petName"] != "Rex" {
					t.Errorf("Expected petName 'Rex', got %v", data["petName"])
				}
				if data["type"] != "walk" {
					t.Errorf("Expected type 'walk', got %v", data["type"])
				}
				if data["duration"] != float64(20) {
					t.Errorf("Expected duration 20, got %v", data["duration"])
				}
				if id, ok := data["id"].(float64); !ok || id <= 0 {
					t.Errorf("Expected a positive id, got %v", data["id"])
				}
				if _, ok := data["createdAt"].(string); !ok {
					t.Error("Expected createdAt to be set")
				}
			},
		},
		{
			name: "explicit dateTime",
			body: map[string]any{
				"petName":      "Luna",
				"activityType": "meal",
				"duration":     1,
				"dateTime":     "2025-06-10T08:00:00Z",
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, body map[string]any) {
				data := body["data"].(map[string]any)
				dt, _ := data["dateTime"].(string)
				parsed, err := time.Parse(time.RFC3339, dt)
				if err != nil {
					t.Fatalf("dateTime %q is not RFC3339: %v", dt, err)
				}
				want := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
				if !parsed.Equal(want) {
					t.Errorf("Expected dateTime %v, got %v", want, parsed)
				}
			},
		},
		{
			name: "missing pet name",
			body: map[string]any{
				"activityType": "walk",
				"duration":     20,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "whitespace-only pet name",
			body: map[string]any{
				"petName":      "   ",
				"activityType": "walk",
				"duration":     20,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid activity type",
			body: map[string]any{
				"petName":      "Rex",
				"activityType": "nap",
				"duration":     20,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing duration",
			body: map[string]any{
				"petName":      "Rex",
				"activityType": "walk",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "zero duration",
			body: map[string]any{
				"petName":      "Rex",
				"activityType": "walk",
				"duration":     0,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "negative duration",
			body: map[string]any{
				"petName":      "Rex",
				"activityType": "walk",
				"duration":     -5,
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, s := newActivityRouter(t)

			req := newTestRequest("POST", "/api/activities", tt.body)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}

			body := decodeEnvelope(t, resp)
			if tt.wantStatus == http.StatusCreated {
				if success, _ := body["success"].(bool); !success {
					t.Error("Expected success to be true")
				}
				if s.Len() != 1 {
					t.Errorf("Expected 1 stored activity, got %d", s.Len())
				}
			} else {
				if success, _ := body["success"].(bool); success {
					t.Error("Expected success to be false")
				}
				if s.Len() != 0 {
					t.Errorf("Expected store to stay empty on validation failure, got %d", s.Len())
				}
			}

			if tt.validate != nil {
				tt.validate(t, body)
			}
		})
	}
}

func TestCreateActivityInvalidBody(t *testing.T) {
	t.Parallel()

	router, _ := newActivityRouter(t)

	req := httptest.NewRequest("POST", "/api/activities", nil)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400 for empty body, got %d", resp.StatusCode)
	}
}

func TestListActivities(t *testing.T) {
	t.Parallel()

	router, s := newActivityRouter(t)

	if _, err := s.Add("Rex", models.ActivityWalk, 20, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := s.Add("Luna", models.ActivityMeal, 1, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/activities", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	body := decodeEnvelope(t, resp)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatal("Expected data object in envelope")
	}

	activities, ok := data["activities"].([]any)
	if !ok {
		t.Fatal("Expected activities array")
	}
	if len(activities) != 2 {
		t.Errorf("Expected 2 activities, got %d", len(activities))
	}

	// Insertion order is display order.
	first := activities[0].(map[string]any)
	if first["petName"] != "Rex" {
		t.Errorf("Expected first activity for 'Rex', got %v", first["petName"])
	}

	if data["currentPet"] != "Luna" {
		t.Errorf("Expected currentPet 'Luna', got %v", data["currentPet"])
	}
}

func TestListActivitiesEmpty(t *testing.T) {
	t.Parallel()

	router, _ := newActivityRouter(t)

	req := httptest.NewRequest("GET", "/api/activities", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]any)

	activities, ok := data["activities"].([]any)
	if !ok {
		t.Fatalf("Expected activities to encode as an array, got %T", data["activities"])
	}
	if len(activities) != 0 {
		t.Errorf("Expected empty activities array, got %d entries", len(activities))
	}
	if data["currentPet"] != "" {
		t.Errorf("Expected empty currentPet, got %v", data["currentPet"])
	}
}

func TestDeleteActivity(t *testing.T) {
	t.Parallel()

	router, s := newActivityRouter(t)

	created, err := s.Add("Rex", models.ActivityWalk, 20, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/activities/%d", created.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]any)
	if id, _ := data["id"].(float64); int64(id) != created.ID {
		t.Errorf("Expected deleted id %d, got %v", created.ID, data["id"])
	}

	if s.Len() != 0 {
		t.Errorf("Expected store to be empty after delete, got %d", s.Len())
	}
}

func TestDeleteActivityUnknownID(t *testing.T) {
	t.Parallel()

	router, _ := newActivityRouter(t)

	req := httptest.NewRequest("DELETE", "/api/activities/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestDeleteActivityMalformedID(t *testing.T) {
	t.Parallel()

	router, _ := newActivityRouter(t)

	req := httptest.NewRequest("DELETE", "/api/activities/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
