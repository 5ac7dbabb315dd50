package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/quillhq/chatdesk/internal/appointments"
)

// suggestedTimes is the subset of bookable slots offered proactively. Lunch
// slots and the half-hour marks are still accepted by the validator even
// though they are never suggested.
var suggestedTimes = []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM", "4:00 PM"}

// SuggestAppointmentTimes formats the next business day after now together
// with the suggested slot list.
func SuggestAppointmentTimes(now time.Time) string {
	date := appointments.NextBusinessDay(now).Format("Monday, January 2, 2006")
	return fmt.Sprintf("Available slots for %s: %s. Please let me know which time works best for you.",
		date, strings.Join(suggestedTimes, ", "))
}
