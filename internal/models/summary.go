package models

// Summary aggregates a single calendar day of activity.
// Walks is the sum of walk durations in minutes; the other fields are
// record counts.
type Summary struct {
	Walks           float64 `json:"walks"`
	Meals           int     `json:"meals"`
	Medications     int     `json:"medications"`
	TotalActivities int     `json:"totalActivities"`
}
