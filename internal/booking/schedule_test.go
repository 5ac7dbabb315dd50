package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuggestAppointmentTimes(t *testing.T) {
	// Friday Jan 2 2026 resolves to Monday Jan 5.
	friday := time.Date(2026, time.January, 2, 10, 0, 0, 0, time.UTC)

	got := SuggestAppointmentTimes(friday)

	assert.Equal(t, "Available slots for Monday, January 5, 2026: 9:00 AM, 10:00 AM, 11:00 AM, 2:00 PM, 3:00 PM, 4:00 PM. Please let me know which time works best for you.", got)
}

func TestSuggestedTimesAreAValidatorSubset(t *testing.T) {
	for _, slot := range suggestedTimes {
		assert.True(t, ValidAppointmentTime(slot), slot)
	}
	// The validator accepts more than is ever suggested.
	assert.True(t, ValidAppointmentTime("9:30 AM"))
	assert.True(t, ValidAppointmentTime("12:30 PM"))
}
