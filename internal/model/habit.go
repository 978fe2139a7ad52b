package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Habit represents a recurring activity tracked by daily completion.
//
// History is a set of "YYYY-MM-DD" calendar dates; each date appears at
// most once and ordering carries no meaning. Streak is a derived value:
// it is persisted for the convenience of external tooling but must be
// recomputed from History before any decision is made on it.
type Habit struct {
	Key       string   `json:"-"`
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Icon      string   `json:"icon"`
	Color     string   `json:"color"`
	Frequency []int    `json:"frequency"`
	AlarmTime string   `json:"alarmTime,omitempty"`
	Streak    int      `json:"streak"`
	History   []string `json:"history"`
	CreatedAt int64    `json:"createdAt"`
}

// SetKey sets the database key for this habit.
func (h *Habit) SetKey(key string) {
	h.Key = key
}

// GetKey returns the database key for this habit.
func (h *Habit) GetKey() string {
	return h.Key
}

// GenerateHabitKey generates a database key for a habit ID.
func GenerateHabitKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixHabit, id)
}

// NewHabit creates a new habit with a fresh identity and empty history.
// IDs are UUIDv7, so keys sort by creation time and prefix scans return
// habits in insertion order.
func NewHabit(name, icon, color string, frequency []int, alarmTime string) (*Habit, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &Habit{
		Key:       GenerateHabitKey(id.String()),
		ID:        id.String(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		Frequency: frequency,
		AlarmTime: alarmTime,
		History:   []string{},
		CreatedAt: time.Now().UnixMilli(),
	}, nil
}

// CompletedOn reports whether the habit was marked complete on the given
// "YYYY-MM-DD" day.
func (h *Habit) CompletedOn(day string) bool {
	return slices.Contains(h.History, day)
}

// ScheduledOn reports whether the habit is scheduled on the given weekday
// index (0=Sunday .. 6=Saturday).
func (h *Habit) ScheduledOn(weekday int) bool {
	return slices.Contains(h.Frequency, weekday)
}

// HistorySet returns the completion history as a set for repeated
// membership tests.
func (h *Habit) HistorySet() map[string]struct{} {
	set := make(map[string]struct{}, len(h.History))
	for _, day := range h.History {
		set[day] = struct{}{}
	}
	return set
}

// Clone returns a deep copy of the habit.
func (h *Habit) Clone() *Habit {
	c := *h
	c.Frequency = slices.Clone(h.Frequency)
	c.History = slices.Clone(h.History)
	return &c
}
