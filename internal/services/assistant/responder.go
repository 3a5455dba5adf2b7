// Package assistant implements the rule-based chat assistant: a message
// is matched against a fixed set of keyword rules in priority order and
// answered with canned text built from the day's activity. There is no
// language model behind this; the only non-determinism is the tip
// branch, whose random source is injectable.
package assistant

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/pawlog/pawlog/internal/models"
	"github.com/pawlog/pawlog/internal/services/insights"
)

// Responder turns an incoming chat message into a reply
type Responder struct {
	pickTip func(n int) int
}

// ResponderOption configures a Responder
type ResponderOption func(*Responder)

// WithTipPicker overrides the random source of the tip branch. pick is
// called with the tip pool size and must return an index in [0, n).
func WithTipPicker(pick func(n int) int) ResponderOption {
	return func(r *Responder) {
		r.pickTip = pick
	}
}

// NewResponder creates a Responder drawing tips with math/rand
func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{pickTip: rand.Intn}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reply selects the reply for message. Matching is case-insensitive
// substring matching, evaluated in strict priority order; the first rule
// that matches wins. activities is the full record list in insertion
// order; now anchors the calendar day the reply talks about.
func (r *Responder) Reply(message string, activities []*models.Activity, currentPet string, now time.Time) string {
	lower := strings.ToLower(message)
	pet := petOrDefault(currentPet)
	summary := insights.Summarize(activities, now)

	switch {
	case containsAny(lower, "walk", "exercise"):
		return walkReply(pet, summary)
	case containsAny(lower, "meal", "food", "eat"):
		return fmt.Sprintf("So far today, %s has had %s. Most adult pets do well on 2 meals a day, while puppies and kittens may need 3-4.",
			pet, countPhrase(summary.Meals, "meal"))
	case containsAny(lower, "medication", "medicine", "med"):
		return fmt.Sprintf("So far today, %s has had %s. Always follow the dosage instructions from your vet.",
			pet, countPhrase(summary.Medications, "medication"))
	case strings.Contains(lower, "health") || (strings.Contains(lower, "how") && strings.Contains(lower, "doing")):
		return fmt.Sprintf("Here's how %s is doing today: %s of walking, %s, and %s. Keep it up!",
			pet, minutesPhrase(summary.Walks), countPhrase(summary.Meals, "meal"), countPhrase(summary.Medications, "medication"))
	case containsAny(lower, "tip", "advice"):
		return careTips[r.pickTip(len(careTips))]
	}

	if last := lastToday(activities, now); last != nil {
		return fmt.Sprintf("The last thing logged for %s today was a %s. How is %s feeling now?", pet, last.Type, pet)
	}
	return fmt.Sprintf("Hello! I can help you track %s's walks, meals, and medications, or share a care tip. What would you like to know?", pet)
}

// walkReply covers the highest-priority rule: urge a walk when none is
// logged today, otherwise report the total and qualify it. Thirty
// minutes marks the boundary between "excellent" and "needs more".
func walkReply(pet string, summary models.Summary) string {
	if summary.Walks == 0 {
		return fmt.Sprintf("Looks like %s hasn't had a walk yet today. Now would be a great time for some exercise!", pet)
	}
	if summary.Walks >= 30 {
		return fmt.Sprintf("So far %s has walked %s today. That's excellent! Keep up the great routine.", pet, minutesPhrase(summary.Walks))
	}
	return fmt.Sprintf("So far %s has walked %s today. That's a good start, but they might need a bit more exercise.", pet, minutesPhrase(summary.Walks))
}

// lastToday returns the most recently added activity dated today, or nil
func lastToday(activities []*models.Activity, now time.Time) *models.Activity {
	var last *models.Activity
	for _, a := range activities {
		if models.SameCalendarDay(a.DateTime, now) {
			last = a
		}
	}
	return last
}

func petOrDefault(currentPet string) string {
	if currentPet == "" {
		return "your pet"
	}
	return currentPet
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func countPhrase(count int, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

func minutesPhrase(minutes float64) string {
	if minutes == 1 {
		return "1 minute"
	}
	return strconv.FormatFloat(minutes, 'f', -1, 64) + " minutes"
}
