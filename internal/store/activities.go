// Package store holds the process-wide application state: the activity
// store, the chat log, and the current-pet session value. All state is
// in memory and lost on restart; every container serializes mutations
// through its own mutex so the invariants hold under parallel requests.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/pawlog/pawlog/internal/models"
)

// ActivityStore is an ordered in-memory collection of activity records.
// Insertion order is display order. It also owns the current-pet session
// value, which is assigned in the same critical section as the append.
type ActivityStore struct {
	mu         sync.RWMutex
	activities []*models.Activity
	currentPet string
	nextID     int64
	now        func() time.Time
}

// ActivityStoreOption configures an ActivityStore
type ActivityStoreOption func(*ActivityStore)

// WithClock overrides the time source used for ids, CreatedAt, and
// DateTime defaults. Used by tests to pin the calendar day.
func WithClock(now func() time.Time) ActivityStoreOption {
	return func(s *ActivityStore) {
		s.now = now
	}
}

// NewActivityStore creates an empty activity store
func NewActivityStore(opts ...ActivityStoreOption) *ActivityStore {
	s := &ActivityStore{
		activities: make([]*models.Activity, 0),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates and appends a new activity record. The record id is a
// strictly increasing counter, so ids never collide even under rapid
// concurrent creation. When dateTime is nil the occurrence time defaults
// to the creation time. On success the current pet is set to petName.
func (s *ActivityStore) Add(petName string, typ models.ActivityType, duration float64, dateTime *time.Time) (*models.Activity, error) {
	petName = strings.TrimSpace(petName)
	if petName == "" {
		return nil, NewValidationError("petName", "must not be empty")
	}
	if !models.ValidActivityType(typ) {
		return nil, NewValidationError("activityType", "must be one of walk, meal, medication")
	}
	if duration <= 0 {
		return nil, NewValidationError("duration", "must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	occurred := now
	if dateTime != nil {
		occurred = *dateTime
	}

	s.nextID++
	activity := &models.Activity{
		ID:        s.nextID,
		PetName:   petName,
		Type:      typ,
		Duration:  duration,
		DateTime:  occurred,
		CreatedAt: now,
	}

	s.activities = append(s.activities, activity)
	s.currentPet = petName
	return activity, nil
}

// List returns a snapshot of all records in insertion order together
// with the current pet name.
func (s *ActivityStore) List() ([]*models.Activity, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Activity, len(s.activities))
	copy(out, s.activities)
	return out, s.currentPet
}

// Delete removes the first record with the given id and returns it.
// Returns NotFoundError when no record matches.
func (s *ActivityStore) Delete(id int64) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.activities {
		if a.ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			return a, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// On returns the records whose occurrence time falls on the same local
// calendar day as day, in insertion order.
func (s *ActivityStore) On(day time.Time) []*models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Activity, 0)
	for _, a := range s.activities {
		if models.SameCalendarDay(a.DateTime, day) {
			out = append(out, a)
		}
	}
	return out
}

// CurrentPet returns the most recently logged pet's name, or "" when no
// activity has been logged yet.
func (s *ActivityStore) CurrentPet() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPet
}

// Len returns the number of stored records
func (s *ActivityStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}
