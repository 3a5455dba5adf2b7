package insights

import (
	"fmt"
	"time"

	"github.com/pawlog/pawlog/internal/models"
)

// reminderHour is the local hour from which the walk reminder may fire
const reminderHour = 18

// EvaluateReminder decides whether the evening walk reminder should be
// shown. It fires only when the local hour of now is reminderHour or
// later, a current pet is set, and no walk has been logged on today's
// calendar date. This is evaluated on demand; nothing is scheduled or
// pushed.
func EvaluateReminder(activities []*models.Activity, currentPet string, now time.Time) (bool, string) {
	if now.Local().Hour() < reminderHour || currentPet == "" {
		return false, ""
	}
	for _, a := range activities {
		if a.Type == models.ActivityWalk && models.SameCalendarDay(a.DateTime, now) {
			return false, ""
		}
	}
	return true, fmt.Sprintf("%s still needs exercise today!", currentPet)
}
