package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePattern matches the DD/MM/YY wire format. Shape only — calendar
// validity is checked separately in IsValidDate.
var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)

// IsValidDate reports whether s is a real calendar date in DD/MM/YY form.
// Two-digit years are interpreted as 2000+YY. Impossible combinations
// such as "31/02/25" are rejected: time.Date normalizes overflow (Feb 31
// becomes Mar 2/3), so a round-trip comparison catches them.
func IsValidDate(s string) bool {
	day, month, year, ok := splitDate(s)
	if !ok {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month && t.Year() == year
}

// FormatDateForDisplay renders a DD/MM/YY date as a long en-US form,
// e.g. "Wednesday, June 18, 2025". Output for invalid input is
// unspecified; callers are expected to validate first.
func FormatDateForDisplay(s string) string {
	day, month, year, ok := splitDate(s)
	if !ok {
		return s
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Format("Monday, January 2, 2006")
}

// CompareDates orders two DD/MM/YY dates chronologically, returning a
// negative, zero, or positive value like strings.Compare. Comparison is
// numeric on year, then month, then day — lexical order on DD/MM/YY
// strings does not match chronological order across month or year
// boundaries. Unparseable dates sort before valid ones.
func CompareDates(a, b string) int {
	dayA, monthA, yearA, _ := splitDate(a)
	dayB, monthB, yearB, _ := splitDate(b)
	if yearA != yearB {
		return yearA - yearB
	}
	if monthA != monthB {
		return monthA - monthB
	}
	return dayA - dayB
}

// splitDate parses DD/MM/YY into numeric day, month, and full year.
func splitDate(s string) (day, month, year int, ok bool) {
	if !datePattern.MatchString(s) {
		return 0, 0, 0, false
	}
	parts := strings.Split(s, "/")
	day, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	yy, _ := strconv.Atoi(parts[2])
	return day, month, 2000 + yy, true
}
