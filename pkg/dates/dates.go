// Package dates owns the canonical day-key form used throughout the
// tracker. Every day is addressed by its ISO string, YYYY-MM-DD, which
// sorts chronologically as plain text.
package dates

import (
	"time"
)

const Layout = "2006-01-02"

// Key returns the canonical day key for t in local time.
func Key(t time.Time) string {
	return t.Local().Format(Layout)
}

// Parse turns a day key back into a time at local midnight.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Yesterday returns the key for the calendar day before the given key.
// Invalid keys yield the empty string.
func Yesterday(key string) string {
	t, err := Parse(key)
	if err != nil {
		return ""
	}
	return Key(t.AddDate(0, 0, -1))
}

// Gap returns the number of calendar days from older to newer. Both
// arguments are day keys; a malformed key yields -1 so callers treat the
// pair as non-adjacent. Keys are pure calendar dates, so the arithmetic
// runs in UTC where every day is exactly 24h; parsing at local midnight
// would miscount across DST transitions.
func Gap(newer, older string) int {
	a, err := time.Parse(Layout, newer)
	if err != nil {
		return -1
	}
	b, err := time.Parse(Layout, older)
	if err != nil {
		return -1
	}
	return int(a.Sub(b).Hours() / 24)
}

// Day returns a single-key range.
func Day(t time.Time) []string {
	return []string{Key(t)}
}

// Week returns the Monday-start week containing t, seven keys long.
func Week(t time.Time) []string {
	t = t.Local()
	offset := (int(t.Weekday()) + 6) % 7 // Monday is day zero
	monday := t.AddDate(0, 0, -offset)
	keys := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		keys = append(keys, Key(monday.AddDate(0, 0, i)))
	}
	return keys
}

// Month returns every day of the calendar month containing t.
func Month(t time.Time) []string {
	t = t.Local()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	days := DaysIn(t)
	keys := make([]string, 0, days)
	for i := 0; i < days; i++ {
		keys = append(keys, Key(first.AddDate(0, 0, i)))
	}
	return keys
}

// DaysIn reports the number of days in the month containing t.
func DaysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}
