package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/habitflare/internal/model"
)

func TestNewHabit(t *testing.T) {
	h, err := model.NewHabit("Read", "read", "blue", []int{1, 3}, "07:30")
	require.NoError(t, err)

	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "habit:"+h.ID, h.Key)
	assert.Equal(t, "Read", h.Name)
	assert.Equal(t, []int{1, 3}, h.Frequency)
	assert.Equal(t, "07:30", h.AlarmTime)
	assert.NotNil(t, h.History)
	assert.Empty(t, h.History)
	assert.Positive(t, h.CreatedAt)
}

func TestNewHabit_IDsAreTimeOrdered(t *testing.T) {
	// UUIDv7 ids sort by creation time, which is what keeps prefix scans
	// in insertion order.
	prev, err := model.NewHabit("a", "", "", nil, "")
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		next, err := model.NewHabit("b", "", "", nil, "")
		require.NoError(t, err)
		assert.Less(t, prev.ID, next.ID)
		prev = next
	}
}

func TestHabit_CompletedOn(t *testing.T) {
	h := &model.Habit{History: []string{"2026-03-10"}}
	assert.True(t, h.CompletedOn("2026-03-10"))
	assert.False(t, h.CompletedOn("2026-03-09"))
}

func TestHabit_ScheduledOn(t *testing.T) {
	h := &model.Habit{Frequency: []int{1, 3, 5}}
	assert.True(t, h.ScheduledOn(3))
	assert.False(t, h.ScheduledOn(0))

	never := &model.Habit{}
	for weekday := 0; weekday < 7; weekday++ {
		assert.False(t, never.ScheduledOn(weekday))
	}
}

func TestHabit_Clone(t *testing.T) {
	h := &model.Habit{
		ID:        "id",
		Name:      "Read",
		Frequency: []int{1},
		History:   []string{"2026-03-10"},
	}
	c := h.Clone()

	c.History = append(c.History, "2026-03-11")
	c.Frequency = append(c.Frequency, 2)

	assert.Equal(t, []string{"2026-03-10"}, h.History)
	assert.Equal(t, []int{1}, h.Frequency)
}

func TestHabit_JSONShape(t *testing.T) {
	h := &model.Habit{
		Key:       "habit:abc",
		ID:        "abc",
		Name:      "Read",
		Frequency: []int{1},
		History:   []string{},
		CreatedAt: 1700000000000,
	}

	data, err := json.Marshal(h)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// The database key is carried in the key itself, never in the value.
	assert.NotContains(t, raw, "Key")
	assert.NotContains(t, raw, "key")
	// Absent alarm is omitted entirely.
	assert.NotContains(t, raw, "alarmTime")
	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "createdAt")
}

func TestSettings_Merge(t *testing.T) {
	base := model.DefaultSettings()
	assert.False(t, base.DarkMode)

	on := true
	merged := base.Merge(model.SettingsPatch{DarkMode: &on})
	assert.True(t, merged.DarkMode)
	assert.False(t, base.DarkMode, "merge returns a copy")

	unchanged := merged.Merge(model.SettingsPatch{})
	assert.True(t, unchanged.DarkMode)
}
