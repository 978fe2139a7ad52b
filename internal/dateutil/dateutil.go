// Package dateutil provides local-calendar-date arithmetic for HabitFlare.
//
// All functions work on "YYYY-MM-DD" strings derived from local wall-clock
// time fields. Formatting never goes through UTC: truncating a UTC
// timestamp shifts the day near midnight in non-UTC zones, so the local
// year/month/day fields are always read directly.
package dateutil

import (
	"fmt"
	"iter"
	"time"
)

// DayFormat is the calendar date layout used throughout HabitFlare.
const DayFormat = "2006-01-02"

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Today returns the current local calendar date.
func Today() string {
	return Format(time.Now())
}

// Format returns the local calendar date of t.
func Format(t time.Time) string {
	return t.Format(DayFormat)
}

// Parse parses a "YYYY-MM-DD" string into a local-time date.
func Parse(day string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, day, time.Local)
}

// SubtractDays returns the calendar date n days before day.
//
// The date is anchored at local noon before the arithmetic so a
// daylight-saving transition inside the subtracted span cannot shift the
// result across a day boundary.
func SubtractDays(day string, n int) string {
	t, err := Parse(day)
	if err != nil {
		return day
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local)
	return Format(noon.AddDate(0, 0, -n))
}

// AddDays returns the calendar date n days after day.
func AddDays(day string, n int) string {
	return SubtractDays(day, -n)
}

// WeekdayOf returns the weekday index (0=Sunday .. 6=Saturday) of day.
func WeekdayOf(day string) int {
	t, err := Parse(day)
	if err != nil {
		return 0
	}
	return int(t.Weekday())
}

// DayName maps a weekday index to its 3-letter English abbreviation.
// Indices outside 0..6 are a caller bug and panic.
func DayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		panic(fmt.Sprintf("dateutil: weekday index out of range: %d", weekday))
	}
	return dayNames[weekday]
}

// MonthGrid yields the cells of a month's calendar grid: leading empty
// strings for the weekday offset of the 1st, then each day of the month
// as "YYYY-MM-DD" in increasing order. The sequence is finite and can be
// ranged over more than once.
func MonthGrid(year int, month time.Month) iter.Seq[string] {
	return func(yield func(string) bool) {
		first := time.Date(year, month, 1, 12, 0, 0, 0, time.Local)
		for i := 0; i < int(first.Weekday()); i++ {
			if !yield("") {
				return
			}
		}
		for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
			if !yield(Format(d)) {
				return
			}
		}
	}
}

// WeekOf returns the 7 consecutive dates of the week containing day,
// starting from that week's Sunday.
func WeekOf(day string) [7]string {
	start := SubtractDays(day, WeekdayOf(day))
	var week [7]string
	for i := range week {
		week[i] = AddDays(start, i)
	}
	return week
}
