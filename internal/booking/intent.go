package booking

import "strings"

// bookingKeywords are the substrings that pull a message into the booking
// dialogue when no session is already open.
var bookingKeywords = []string{
	"call me", "book an appointment", "schedule appointment",
	"book appointment", "appointment", "schedule a call",
	"schedule meeting", "need a call", "want to book",
	"set up meeting", "arrange a call",
}

// IsBookingRequest returns true if the message contains any booking-intent
// keyword, case-insensitively.
func IsBookingRequest(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range bookingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
