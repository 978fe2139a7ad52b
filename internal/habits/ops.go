package habits

import (
	"slices"
	"strconv"
	"strings"

	"github.com/manav03panchal/habitflare/internal/errors"
	"github.com/manav03panchal/habitflare/internal/model"
)

// Draft holds the caller-supplied fields of a habit to be created.
type Draft struct {
	Name      string
	Icon      string
	Color     string
	Frequency []int
	AlarmTime string
}

// Add validates the draft and appends a new habit to the collection.
// It returns the extended collection and the created habit. The input
// slice is not modified.
//
// A name that is empty after trimming whitespace is rejected; a nameless
// habit is never constructed. Frequency is normalized to a sorted,
// deduplicated subset of 0..6.
func Add(collection []*model.Habit, draft Draft) ([]*model.Habit, *model.Habit, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return collection, nil, errors.NewUserErrorWithField(
			"name", draft.Name,
			"Habit name cannot be empty",
			"Provide a name, e.g. 'habitflare add \"Read 30 mins\"'")
	}

	frequency, err := NormalizeFrequency(draft.Frequency)
	if err != nil {
		return collection, nil, err
	}

	habit, err := model.NewHabit(name, draft.Icon, draft.Color, frequency, draft.AlarmTime)
	if err != nil {
		return collection, nil, err
	}

	extended := make([]*model.Habit, 0, len(collection)+1)
	extended = append(extended, collection...)
	extended = append(extended, habit)
	return extended, habit, nil
}

// NormalizeFrequency sorts and deduplicates a weekday set, rejecting
// indices outside 0..6. An empty set is valid: the habit is simply never
// scheduled.
func NormalizeFrequency(frequency []int) ([]int, error) {
	normalized := make([]int, 0, len(frequency))
	for _, weekday := range frequency {
		if weekday < 0 || weekday > 6 {
			return nil, errors.NewUserErrorWithField(
				"frequency", strconv.Itoa(weekday),
				"Invalid weekday index",
				"Weekdays run 0 (Sunday) through 6 (Saturday)")
		}
		if !slices.Contains(normalized, weekday) {
			normalized = append(normalized, weekday)
		}
	}
	slices.Sort(normalized)
	return normalized, nil
}

// Toggle flips the completion state of one calendar day and returns the
// updated habit copy. Toggling the same day twice restores the original
// history. The engine itself accepts any date; policy about future dates
// belongs to the caller.
func Toggle(h *model.Habit, day string) *model.Habit {
	toggled := h.Clone()
	if idx := slices.Index(toggled.History, day); idx >= 0 {
		toggled.History = slices.Delete(toggled.History, idx, idx+1)
	} else {
		toggled.History = append(toggled.History, day)
	}
	return toggled
}

// Delete removes the habit with the given id. The second return reports
// whether a habit was removed; an unknown id leaves the collection
// untouched rather than raising.
func Delete(collection []*model.Habit, id string) ([]*model.Habit, bool) {
	for i, h := range collection {
		if h.ID == id {
			remaining := make([]*model.Habit, 0, len(collection)-1)
			remaining = append(remaining, collection[:i]...)
			remaining = append(remaining, collection[i+1:]...)
			return remaining, true
		}
	}
	return collection, false
}

// FindByID returns the habit with the given id, or nil.
func FindByID(collection []*model.Habit, id string) *model.Habit {
	for _, h := range collection {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// FindByName returns the first habit whose name matches case-insensitively,
// or nil.
func FindByName(collection []*model.Habit, name string) *model.Habit {
	for _, h := range collection {
		if strings.EqualFold(h.Name, name) {
			return h
		}
	}
	return nil
}
