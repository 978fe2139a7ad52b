// Package validate provides input validation helpers for the HabitFlare CLI.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/habitflare/internal/errors"
)

const (
	// MaxHabitNameLength is the maximum length for a habit name.
	MaxHabitNameLength = 128
)

// HabitName validates a habit display name. Whitespace-only names count
// as empty.
func HabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewUserError("Habit name cannot be empty", "Provide a habit name")
	}
	if utf8.RuneCountInString(name) > MaxHabitNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Habit name too long",
			"Habit names must be 128 characters or fewer")
	}
	return nil
}

// Weekdays validates a weekday index set (0=Sunday .. 6=Saturday).
// An empty set is allowed: the habit is never scheduled.
func Weekdays(frequency []int) error {
	for _, weekday := range frequency {
		if weekday < 0 || weekday > 6 {
			return errors.NewUserError(
				"Invalid weekday index",
				"Weekdays run 0 (Sunday) through 6 (Saturday)")
		}
	}
	return nil
}

// AlarmTime checks the shape of an optional "HH:MM" reminder string.
// Empty is allowed (no reminder); beyond the basic shape the value is
// opaque to the application.
func AlarmTime(alarm string) error {
	if alarm == "" {
		return nil
	}
	if len(alarm) != 5 || alarm[2] != ':' {
		return errors.NewUserErrorWithField("alarm", alarm,
			"Invalid alarm time format",
			"Use 24-hour HH:MM format like '07:30'")
	}
	for i, c := range alarm {
		if i == 2 {
			continue
		}
		if c < '0' || c > '9' {
			return errors.NewUserErrorWithField("alarm", alarm,
				"Invalid alarm time format",
				"Use 24-hour HH:MM format like '07:30'")
		}
	}
	return nil
}
