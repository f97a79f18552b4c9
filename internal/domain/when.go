package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// WhenLayout is the display layout of schedule entries: day before month,
// 12-hour clock with a lower-case am/pm suffix.
const WhenLayout = "02/01/2006 03:04pm"

var whenPattern = regexp.MustCompile(`(?i)^\s*(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2})\s*(am|pm)\s*$`)

// ParseWhen parses a DD/MM/YYYY HH:MMam|pm string in loc. Strings that do
// not match, or that name an impossible date or time, return ok=false.
func ParseWhen(s string, loc *time.Location) (time.Time, bool) {
	m := whenPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	if hour < 1 || hour > 12 || minute > 59 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	// 12am is midnight, 12pm is noon.
	hour %= 12
	if strings.EqualFold(m[6], "pm") {
		hour += 12
	}

	if loc == nil {
		loc = time.Local
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// FormatWhen renders t in WhenLayout.
func FormatWhen(t time.Time) string {
	return t.Format(WhenLayout)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
