package habits

import (
	"math"
	"sort"

	"github.com/manav03panchal/habitflare/internal/dateutil"
	"github.com/manav03panchal/habitflare/internal/model"
)

// Status classifies a calendar day's aggregate completion across the
// habits scheduled that day. Used for heatmap cell intensity.
type Status int

const (
	// StatusNone: nothing scheduled, or nothing completed.
	StatusNone Status = iota
	// StatusLow: under half of the scheduled habits completed.
	StatusLow
	// StatusHigh: at least half, but not all.
	StatusHigh
	// StatusFull: every scheduled habit completed.
	StatusFull
)

// Indicator is the collapsed tri-state used by the week-strip widget.
type Indicator int

const (
	// IndicatorIdle: nothing scheduled that day, or nothing completed.
	IndicatorIdle Indicator = iota
	// IndicatorPartial: some, but not all, scheduled habits completed.
	IndicatorPartial
	// IndicatorComplete: every scheduled habit completed.
	IndicatorComplete
)

// activeOn returns the habits scheduled on the given day's weekday.
func activeOn(day string, collection []*model.Habit) []*model.Habit {
	weekday := dateutil.WeekdayOf(day)
	var active []*model.Habit
	for _, h := range collection {
		if h.ScheduledOn(weekday) {
			active = append(active, h)
		}
	}
	return active
}

// DayStatus computes the heatmap status for one calendar day.
func DayStatus(day string, collection []*model.Habit) Status {
	active := activeOn(day, collection)
	if len(active) == 0 {
		return StatusNone
	}

	completed := 0
	for _, h := range active {
		if h.CompletedOn(day) {
			completed++
		}
	}

	switch ratio := float64(completed) / float64(len(active)); {
	case completed == 0:
		return StatusNone
	case ratio == 1:
		return StatusFull
	case ratio >= 0.5:
		return StatusHigh
	default:
		return StatusLow
	}
}

// WeekDayIndicator computes the week-strip tri-state for one day.
func WeekDayIndicator(day string, collection []*model.Habit) Indicator {
	active := activeOn(day, collection)
	if len(active) == 0 {
		return IndicatorIdle
	}

	completed := 0
	for _, h := range active {
		if h.CompletedOn(day) {
			completed++
		}
	}

	switch {
	case completed == len(active):
		return IndicatorComplete
	case completed > 0:
		return IndicatorPartial
	default:
		return IndicatorIdle
	}
}

// CompletionRate30 returns the habit's completion percentage over the 30
// calendar days ending at refDay inclusive.
//
// Opportunities are the days in the window whose weekday is in the
// habit's frequency; the rate is completed opportunities over total
// opportunities, rounded to the nearest integer. A habit with no
// opportunities in the window rates 0.
func CompletionRate30(h *model.Habit, refDay string) int {
	history := h.HistorySet()

	opportunities := 0
	completed := 0
	for i := 0; i < 30; i++ {
		day := dateutil.SubtractDays(refDay, i)
		if !h.ScheduledOn(dateutil.WeekdayOf(day)) {
			continue
		}
		opportunities++
		if _, ok := history[day]; ok {
			completed++
		}
	}

	if opportunities == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(opportunities) * 100))
}

// OverallCompletionRate returns the mean of every habit's 30-day rate,
// rounded to the nearest integer. An empty collection rates 0.
func OverallCompletionRate(collection []*model.Habit, refDay string) int {
	if len(collection) == 0 {
		return 0
	}

	sum := 0
	for _, h := range collection {
		sum += CompletionRate30(h, refDay)
	}
	return int(math.Round(float64(sum) / float64(len(collection))))
}

// BestStreakHabit returns the habit with the highest streak as of today.
// Ties keep collection order (stable sort). Returns nil for an empty
// collection.
func BestStreakHabit(collection []*model.Habit, today string) *model.Habit {
	if len(collection) == 0 {
		return nil
	}

	ranked := make([]*model.Habit, len(collection))
	copy(ranked, collection)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Streak(ranked[i].History, today) > Streak(ranked[j].History, today)
	})
	return ranked[0]
}

// ActiveStreakCount returns how many habits have a live streak today.
func ActiveStreakCount(collection []*model.Habit, today string) int {
	count := 0
	for _, h := range collection {
		if Streak(h.History, today) > 0 {
			count++
		}
	}
	return count
}
