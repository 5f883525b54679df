// Package dates resolves the date formats found in bank notifications and
// statements. All strategies interpret numeric dates day-first; this bank
// writes 05/02/25 for the 5th of February.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var (
	monthTimeRe = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3})\s+(\d{2})\s+(\d{1,2}):(\d{1,2})`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})(?:\s+(\d{1,2}):(\d{1,2}))?`)
)

// Parse resolves a date string to a time, or nil when no strategy applies.
// Strategies, in order: "D MMM YY HH:MM" with a fixed month table,
// "D/M/YY[YY]" day-first, then a general day-first parser. Two-digit years
// resolve to 2000+YY. Parse never panics on malformed input.
func Parse(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if m := monthTimeRe.FindStringSubmatch(s); m != nil {
		month, ok := months[strings.ToUpper(m[2])]
		if !ok {
			month = time.January
		}
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		t := time.Date(2000+year, month, day, hour, minute, 0, 0, time.UTC)
		return &t
	}

	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		var hour, minute int
		if m[4] != "" {
			hour, _ = strconv.Atoi(m[4])
			minute, _ = strconv.Atoi(m[5])
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
			return &t
		}
	}

	t, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(false))
	if err != nil {
		return nil
	}
	if t.Year() < 100 {
		t = time.Date(2000+t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	}
	return &t
}
