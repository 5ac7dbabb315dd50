package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "john@example.com", "first.last+tag@sub.domain.org"}
	for _, s := range valid {
		assert.True(t, ValidEmail(s), s)
	}

	invalid := []string{"a@b", "a b@c.com", "", "no-at-sign.com", "a@ b.co", "a@b .co"}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), s)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"1234567890", "+1-234-567-8900", "(123) 456-7890", "+441234567890"}
	for _, s := range valid {
		assert.True(t, ValidPhone(s), s)
	}

	invalid := []string{"12345", "123456789", "12345abcde", "123-456-78x0", ""}
	for _, s := range invalid {
		assert.False(t, ValidPhone(s), s)
	}
}

func TestNormalizeClockTime(t *testing.T) {
	cases := map[string]string{
		"9am":       "9:00 AM",
		"9:00am":    "9:00 AM",
		"9:00 AM":   "9:00 AM",
		"9:00 AM  ": "9:00 AM",
		"  2:30 pm": "2:30 PM",
		"11  am":    "11:00 AM",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeClockTime(in), in)
	}

	// Unparseable strings pass through (upper-cased, whitespace collapsed)
	// and fail membership downstream.
	assert.Equal(t, "9:00 XM", NormalizeClockTime("9:00 xm"))
	assert.Equal(t, "NOON", NormalizeClockTime("noon"))
}

func TestValidAppointmentTime(t *testing.T) {
	accepted := []string{"9am", "9:00am", "9:00 AM", "9:00 AM ", "9:30 AM", "12:00 PM", "4:30 pm"}
	for _, s := range accepted {
		assert.True(t, ValidAppointmentTime(s), s)
	}

	rejected := []string{"25:00 AM", "9:00 XM", "8:00 AM", "5:00 PM", "9:15 AM", "noon", ""}
	for _, s := range rejected {
		assert.False(t, ValidAppointmentTime(s), s)
	}
}
