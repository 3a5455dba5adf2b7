// Package insights derives read-only views from the activity store: the
// daily summary and the evening walk reminder. Everything here is a pure
// function of the activities passed in and an explicit reference time,
// so callers (and tests) control the clock.
package insights

import (
	"time"

	"github.com/pawlog/pawlog/internal/models"
)

// Summarize aggregates the activities that fall on the same local
// calendar day as ref. Walks sums durations (minutes); meals and
// medications count records; TotalActivities counts all of the day's
// records regardless of type.
func Summarize(activities []*models.Activity, ref time.Time) models.Summary {
	var summary models.Summary
	for _, a := range activities {
		if !models.SameCalendarDay(a.DateTime, ref) {
			continue
		}
		summary.TotalActivities++
		switch a.Type {
		case models.ActivityWalk:
			summary.Walks += a.Duration
		case models.ActivityMeal:
			summary.Meals++
		case models.ActivityMedication:
			summary.Medications++
		}
	}
	return summary
}
