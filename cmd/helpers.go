package cmd

import (
	"strings"

	"github.com/manav03panchal/habitflare/internal/dateutil"
	"github.com/manav03panchal/habitflare/internal/errors"
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/model"
)

// todayDay returns the local calendar day once per invocation path.
func todayDay() string {
	return dateutil.Today()
}

// resolveHabit finds a habit by id or (case-insensitive) name.
func resolveHabit(collection []*model.Habit, ref string) (*model.Habit, error) {
	if h := habits.FindByID(collection, ref); h != nil {
		return h, nil
	}
	if h := habits.FindByName(collection, ref); h != nil {
		return h, nil
	}
	return nil, errors.NewUserErrorWithField("habit", ref,
		"Habit not found",
		"Run 'habitflare list' to see your habits")
}

// describeDays renders a weekday set for humans.
func describeDays(frequency []int) string {
	switch len(frequency) {
	case 0:
		return "never"
	case 7:
		return "every day"
	}

	names := make([]string, 0, len(frequency))
	for _, weekday := range frequency {
		names = append(names, dateutil.DayName(weekday))
	}
	return strings.Join(names, ", ")
}
