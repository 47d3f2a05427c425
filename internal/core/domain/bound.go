package domain

import (
	"fmt"
	"time"
)

// BoundLayout is the wire format of after_date and before_date.
const BoundLayout = "2006-01-02 15:04:05"

// ParseBound parses s as a BoundLayout timestamp in loc. The input must
// match the layout character for character: time.Parse alone tolerates a
// trailing fractional second, a one-digit hour and repeated spaces, none
// of which the wire format allows.
func ParseBound(s string, loc *time.Location) (time.Time, error) {
	if !matchesLayout(s) {
		return time.Time{}, fmt.Errorf("%q does not match format YYYY-MM-DD HH:MM:SS", s)
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(BoundLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q does not match format YYYY-MM-DD HH:MM:SS: %w", s, err)
	}
	return t, nil
}

// matchesLayout reports whether s has a digit wherever BoundLayout has
// one and the same separator everywhere else.
func matchesLayout(s string) bool {
	if len(s) != len(BoundLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c, want := s[i], BoundLayout[i]
		if want >= '0' && want <= '9' {
			if c < '0' || c > '9' {
				return false
			}
		} else if c != want {
			return false
		}
	}
	return true
}

// FormatBound renders t in BoundLayout within loc.
func FormatBound(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(BoundLayout)
}
