package models

import (
	"time"
)

// ActivityType represents the kind of activity being logged
type ActivityType string

const (
	ActivityWalk       ActivityType = "walk"
	ActivityMeal       ActivityType = "meal"
	ActivityMedication ActivityType = "medication"
)

// ValidActivityType reports whether t is one of the known activity types
func ValidActivityType(t ActivityType) bool {
	switch t {
	case ActivityWalk, ActivityMeal, ActivityMedication:
		return true
	default:
		return false
	}
}

// Activity represents a logged pet activity. Records are immutable after
// creation and are removed only by an explicit delete.
type Activity struct {
	ID       int64        `json:"id"`
	PetName  string       `json:"petName"`
	Type     ActivityType `json:"type"`
	// Duration is minutes for walks and a count/quantity for meals and
	// medications. Always > 0.
	Duration  float64   `json:"duration"`
	DateTime  time.Time `json:"dateTime"`
	CreatedAt time.Time `json:"createdAt"`
}

// SameCalendarDay reports whether a and b fall on the same local calendar
// day. This is calendar-date equality, not a rolling 24h window.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
