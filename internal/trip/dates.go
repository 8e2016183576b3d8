package trip

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for all trip dates.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// ParseDate parses an ISO date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ValidDate reports whether s parses as an ISO date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// DurationDays returns ceil((end - start) / 1 day). The result is negative
// when end precedes start; it is not floored at zero.
func DurationDays(start, end string) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, fmt.Errorf("start date: %w", err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, fmt.Errorf("end date: %w", err)
	}
	return int(math.Ceil(float64(e.Sub(s)) / float64(day))), nil
}

// FormatDate renders an ISO date as "Jan 2, 2006". Unparseable input is
// returned as-is so a half-typed date still shows up in the review.
func FormatDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateRange renders "start - end".
func FormatDateRange(start, end string) string {
	return FormatDate(start) + " - " + FormatDate(end)
}
