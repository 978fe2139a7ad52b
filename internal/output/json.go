package output

import (
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// HabitOutput represents a habit in JSON output. Streak is the
// recomputed value, not the persisted cache.
type HabitOutput struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Icon      string   `json:"icon"`
	Color     string   `json:"color"`
	Frequency []int    `json:"frequency"`
	AlarmTime string   `json:"alarmTime,omitempty"`
	Streak    int      `json:"streak"`
	History   []string `json:"history"`
	CreatedAt int64    `json:"createdAt"`
	DoneToday bool     `json:"done_today"`
}

// NewHabitOutput creates a HabitOutput from a Habit as of the given day.
func NewHabitOutput(h *model.Habit, day string) *HabitOutput {
	return &HabitOutput{
		ID:        h.ID,
		Name:      h.Name,
		Icon:      h.Icon,
		Color:     h.Color,
		Frequency: h.Frequency,
		AlarmTime: h.AlarmTime,
		Streak:    habits.Streak(h.History, day),
		History:   h.History,
		CreatedAt: h.CreatedAt,
		DoneToday: h.CompletedOn(day),
	}
}

// ListResponse represents the list command output in JSON.
type ListResponse struct {
	Date   string         `json:"date"`
	Habits []*HabitOutput `json:"habits"`
}

// ToggleResponse represents the done command output in JSON.
type ToggleResponse struct {
	Status string       `json:"status"`
	Date   string       `json:"date"`
	Habit  *HabitOutput `json:"habit"`
}

// DeleteResponse represents the delete command output in JSON.
type DeleteResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// StatsHabit represents one habit's statistics in JSON.
type StatsHabit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Streak int    `json:"streak"`
	Rate30 int    `json:"rate_30d"`
}

// StatsResponse represents the stats command output in JSON.
type StatsResponse struct {
	Date        string       `json:"date"`
	OverallRate int          `json:"overall_rate_30d"`
	BestHabit   string       `json:"best_habit,omitempty"`
	BestStreak  int          `json:"best_streak"`
	Habits      []StatsHabit `json:"habits"`
}

// DayCell represents one calendar day in JSON output.
type DayCell struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// StatusString renders a heatmap status for JSON output.
func StatusString(s habits.Status) string {
	switch s {
	case habits.StatusFull:
		return "full"
	case habits.StatusHigh:
		return "high"
	case habits.StatusLow:
		return "low"
	default:
		return "none"
	}
}

// IndicatorString renders a week indicator for JSON output.
func IndicatorString(i habits.Indicator) string {
	switch i {
	case habits.IndicatorComplete:
		return "complete"
	case habits.IndicatorPartial:
		return "partial"
	default:
		return "idle"
	}
}

// SettingsResponse represents the settings command output in JSON.
type SettingsResponse struct {
	DarkMode bool `json:"darkMode"`
}

// ResetResponse represents the reset command output in JSON.
type ResetResponse struct {
	Status string `json:"status"`
}

// MotivateResponse represents the motivate command output in JSON.
type MotivateResponse struct {
	Habit   string `json:"habit,omitempty"`
	Streak  int    `json:"streak"`
	Message string `json:"message"`
}
