package habits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/habitflare/internal/dateutil"
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/model"
)

// newHabit builds a habit with a fixed identity for aggregate tests.
func newHabit(t *testing.T, name string, frequency []int, history ...string) *model.Habit {
	t.Helper()
	h, err := model.NewHabit(name, "", "", frequency, "")
	require.NoError(t, err)
	h.History = history
	return h
}

var everyDay = []int{0, 1, 2, 3, 4, 5, 6}

func TestDayStatus(t *testing.T) {
	// 2026-03-11 is a Wednesday (weekday 3).
	day := "2026-03-11"

	t.Run("no habits", func(t *testing.T) {
		assert.Equal(t, habits.StatusNone, habits.DayStatus(day, nil))
	})

	t.Run("nothing scheduled that weekday", func(t *testing.T) {
		collection := []*model.Habit{
			newHabit(t, "weekend run", []int{0, 6}, day),
		}
		assert.Equal(t, habits.StatusNone, habits.DayStatus(day, collection))
	})

	t.Run("scheduled but nothing completed", func(t *testing.T) {
		collection := []*model.Habit{
			newHabit(t, "a", everyDay),
			newHabit(t, "b", everyDay),
		}
		assert.Equal(t, habits.StatusNone, habits.DayStatus(day, collection))
	})

	t.Run("under half completed is low", func(t *testing.T) {
		collection := []*model.Habit{
			newHabit(t, "a", everyDay, day),
			newHabit(t, "b", everyDay),
			newHabit(t, "c", everyDay),
		}
		assert.Equal(t, habits.StatusLow, habits.DayStatus(day, collection))
	})

	t.Run("exactly half completed is high", func(t *testing.T) {
		collection := []*model.Habit{
			newHabit(t, "a", everyDay, day),
			newHabit(t, "b", everyDay),
		}
		assert.Equal(t, habits.StatusHigh, habits.DayStatus(day, collection))
	})

	t.Run("all completed is full", func(t *testing.T) {
		collection := []*model.Habit{
			newHabit(t, "a", everyDay, day),
			newHabit(t, "b", everyDay, day),
		}
		assert.Equal(t, habits.StatusFull, habits.DayStatus(day, collection))
	})

	t.Run("single habit is full or none, never partial", func(t *testing.T) {
		done := []*model.Habit{newHabit(t, "a", everyDay, day)}
		missed := []*model.Habit{newHabit(t, "a", everyDay)}
		assert.Equal(t, habits.StatusFull, habits.DayStatus(day, done))
		assert.Equal(t, habits.StatusNone, habits.DayStatus(day, missed))
	})

	t.Run("unscheduled habits are excluded from the denominator", func(t *testing.T) {
		collection := []*model.Habit{
			newHabit(t, "daily", everyDay, day),
			newHabit(t, "weekend", []int{0, 6}),
		}
		assert.Equal(t, habits.StatusFull, habits.DayStatus(day, collection))
	})
}

func TestWeekDayIndicator(t *testing.T) {
	day := "2026-03-11"

	t.Run("idle when nothing scheduled", func(t *testing.T) {
		assert.Equal(t, habits.IndicatorIdle, habits.WeekDayIndicator(day, nil))
	})

	t.Run("idle when scheduled but untouched", func(t *testing.T) {
		collection := []*model.Habit{newHabit(t, "a", everyDay)}
		assert.Equal(t, habits.IndicatorIdle, habits.WeekDayIndicator(day, collection))
	})

	t.Run("partial when some completed", func(t *testing.T) {
		collection := []*model.Habit{
			newHabit(t, "a", everyDay, day),
			newHabit(t, "b", everyDay),
		}
		assert.Equal(t, habits.IndicatorPartial, habits.WeekDayIndicator(day, collection))
	})

	t.Run("complete when all completed", func(t *testing.T) {
		collection := []*model.Habit{
			newHabit(t, "a", everyDay, day),
			newHabit(t, "b", everyDay, day),
		}
		assert.Equal(t, habits.IndicatorComplete, habits.WeekDayIndicator(day, collection))
	})
}

func TestCompletionRate30(t *testing.T) {
	refDay := "2026-03-10"

	t.Run("no opportunities rates zero", func(t *testing.T) {
		h := newHabit(t, "never", nil, "2026-03-01")
		assert.Equal(t, 0, habits.CompletionRate30(h, refDay))
	})

	t.Run("daily habit fully completed rates 100", func(t *testing.T) {
		var history []string
		day := refDay
		for i := 0; i < 30; i++ {
			history = append(history, day)
			day = prevDay(day)
		}
		h := newHabit(t, "daily", everyDay, history...)
		assert.Equal(t, 100, habits.CompletionRate30(h, refDay))
	})

	t.Run("daily habit never completed rates 0", func(t *testing.T) {
		h := newHabit(t, "daily", everyDay)
		assert.Equal(t, 0, habits.CompletionRate30(h, refDay))
	})

	t.Run("half completed rounds to nearest integer", func(t *testing.T) {
		var history []string
		day := refDay
		for i := 0; i < 30; i++ {
			if i%2 == 0 {
				history = append(history, day)
			}
			day = prevDay(day)
		}
		h := newHabit(t, "daily", everyDay, history...)
		assert.Equal(t, 50, habits.CompletionRate30(h, refDay))
	})

	t.Run("weekday-only habit done every scheduled day rates 100", func(t *testing.T) {
		// Completions only on Mondays; misses on other days are not
		// opportunities and must not drag the rate down.
		h := newHabit(t, "mondays", []int{1},
			"2026-03-09", "2026-03-02", "2026-02-23", "2026-02-16", "2026-02-09")
		assert.Equal(t, 100, habits.CompletionRate30(h, refDay))
	})

	t.Run("completions outside the window are ignored", func(t *testing.T) {
		h := newHabit(t, "daily", everyDay, "2026-01-01", "2025-12-31")
		assert.Equal(t, 0, habits.CompletionRate30(h, refDay))
	})

	t.Run("rate is always within 0 and 100", func(t *testing.T) {
		// Duplicate history entries must not push the rate past 100.
		h := newHabit(t, "daily", everyDay, refDay, refDay, refDay)
		rate := habits.CompletionRate30(h, refDay)
		assert.GreaterOrEqual(t, rate, 0)
		assert.LessOrEqual(t, rate, 100)
	})
}

func TestOverallCompletionRate(t *testing.T) {
	refDay := "2026-03-10"

	t.Run("empty collection rates zero", func(t *testing.T) {
		assert.Equal(t, 0, habits.OverallCompletionRate(nil, refDay))
	})

	t.Run("mean of per-habit rates", func(t *testing.T) {
		var history []string
		day := refDay
		for i := 0; i < 30; i++ {
			history = append(history, day)
			day = prevDay(day)
		}
		full := newHabit(t, "full", everyDay, history...)
		empty := newHabit(t, "empty", everyDay)
		assert.Equal(t, 50, habits.OverallCompletionRate([]*model.Habit{full, empty}, refDay))
	})
}

func TestBestStreakHabit(t *testing.T) {
	today := "2026-03-10"

	t.Run("nil for empty collection", func(t *testing.T) {
		assert.Nil(t, habits.BestStreakHabit(nil, today))
	})

	t.Run("highest streak wins", func(t *testing.T) {
		low := newHabit(t, "low", everyDay, "2026-03-10")
		high := newHabit(t, "high", everyDay, "2026-03-08", "2026-03-09", "2026-03-10")
		best := habits.BestStreakHabit([]*model.Habit{low, high}, today)
		require.NotNil(t, best)
		assert.Equal(t, "high", best.Name)
	})

	t.Run("ties keep collection order", func(t *testing.T) {
		first := newHabit(t, "first", everyDay, "2026-03-10")
		second := newHabit(t, "second", everyDay, "2026-03-10")
		best := habits.BestStreakHabit([]*model.Habit{first, second}, today)
		require.NotNil(t, best)
		assert.Equal(t, "first", best.Name)
	})

	t.Run("input order is not mutated", func(t *testing.T) {
		low := newHabit(t, "low", everyDay, "2026-03-10")
		high := newHabit(t, "high", everyDay, "2026-03-09", "2026-03-10")
		collection := []*model.Habit{low, high}
		habits.BestStreakHabit(collection, today)
		assert.Equal(t, "low", collection[0].Name)
		assert.Equal(t, "high", collection[1].Name)
	})
}

func TestActiveStreakCount(t *testing.T) {
	today := "2026-03-10"
	collection := []*model.Habit{
		newHabit(t, "live", everyDay, "2026-03-10"),
		newHabit(t, "grace", everyDay, "2026-03-09"),
		newHabit(t, "broken", everyDay, "2026-03-01"),
		newHabit(t, "untouched", everyDay),
	}
	assert.Equal(t, 2, habits.ActiveStreakCount(collection, today))
}

// prevDay steps one calendar day back for building test histories.
func prevDay(day string) string {
	return dateutil.SubtractDays(day, 1)
}
