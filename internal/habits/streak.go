// Package habits implements the habit analytics engine: streak
// computation, calendar aggregation, and the pure operations that update
// a habit collection snapshot.
//
// Every function is deterministic given its inputs. Functions that depend
// on "today" take the reference date as an explicit argument; nothing in
// this package reads the clock, touches storage, or caches results.
package habits

import (
	"github.com/manav03panchal/habitflare/internal/dateutil"
	"github.com/manav03panchal/habitflare/internal/model"
)

// Streak returns the current consecutive-day streak for a completion
// history as of the given day.
//
// The streak is granted a one-day grace window: a habit completed through
// yesterday still reports an unbroken streak before today's completion is
// recorded, without today itself adding to the count. Scheduling
// (Habit.Frequency) plays no part here; only consecutive presence in the
// history matters.
func Streak(history []string, today string) int {
	if len(history) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(history))
	for _, day := range history {
		set[day] = struct{}{}
	}

	yesterday := dateutil.SubtractDays(today, 1)

	streak := 0
	var cursor string

	if _, ok := set[today]; ok {
		streak = 1
		cursor = yesterday
	} else if _, ok := set[yesterday]; ok {
		// Grace day: yesterday keeps the streak alive, today is not
		// counted on top of it.
		streak = 1
		cursor = dateutil.SubtractDays(yesterday, 1)
	} else {
		return 0
	}

	for {
		if _, ok := set[cursor]; !ok {
			break
		}
		streak++
		cursor = dateutil.SubtractDays(cursor, 1)
	}

	return streak
}

// CurrentStreak returns the habit's streak as of the local calendar day.
func CurrentStreak(h *model.Habit) int {
	return Streak(h.History, dateutil.Today())
}
