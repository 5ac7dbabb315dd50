package booking

import (
	"regexp"
	"strings"
)

var (
	emailRE      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneDigitRE = regexp.MustCompile(`^\+?[0-9]+$`)
	clockRE      = regexp.MustCompile(`(\d{1,2}):?(\d{2})?\s*(AM|PM)`)
)

// validTimes is the full set of bookable half-hour slots, 9:00 AM through
// 4:30 PM. The suggested subset shown to visitors is smaller; this list is
// the source of truth for what the time step accepts.
var validTimes = map[string]struct{}{
	"9:00 AM": {}, "9:30 AM": {}, "10:00 AM": {}, "10:30 AM": {},
	"11:00 AM": {}, "11:30 AM": {}, "12:00 PM": {}, "12:30 PM": {},
	"1:00 PM": {}, "1:30 PM": {}, "2:00 PM": {}, "2:30 PM": {},
	"3:00 PM": {}, "3:30 PM": {}, "4:00 PM": {}, "4:30 PM": {},
}

// ValidEmail reports whether s looks like local@domain.tld with no whitespace.
func ValidEmail(s string) bool {
	return emailRE.MatchString(s)
}

// ValidPhone strips spaces, hyphens and parentheses, then requires at least
// 10 remaining characters forming an optional leading "+" and digits only.
func ValidPhone(s string) bool {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	return len(clean) >= 10 && phoneDigitRE.MatchString(clean)
}

// NormalizeClockTime collapses internal whitespace, upper-cases, and rewrites
// the first "H[:MM] AM/PM" occurrence into canonical "H:MM AM/PM" form.
// Strings that don't match the clock pattern pass through unchanged; they
// will fail slot membership downstream, which is the intended rejection path.
func NormalizeClockTime(s string) string {
	s = strings.ToUpper(strings.Join(strings.Fields(s), " "))
	m := clockRE.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	hour := s[m[2]:m[3]]
	minute := "00"
	if m[4] >= 0 {
		minute = s[m[4]:m[5]]
	}
	period := s[m[6]:m[7]]
	return s[:m[0]] + hour + ":" + minute + " " + period + s[m[1]:]
}

// ValidAppointmentTime reports whether s normalizes to one of the bookable
// slots.
func ValidAppointmentTime(s string) bool {
	_, ok := validTimes[NormalizeClockTime(s)]
	return ok
}
