package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/habitflare/internal/dateutil"
)

func TestSubtractDays(t *testing.T) {
	t.Run("simple subtraction", func(t *testing.T) {
		assert.Equal(t, "2026-03-09", dateutil.SubtractDays("2026-03-10", 1))
		assert.Equal(t, "2026-03-01", dateutil.SubtractDays("2026-03-10", 9))
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		assert.Equal(t, "2026-02-28", dateutil.SubtractDays("2026-03-01", 1))
		assert.Equal(t, "2025-12-31", dateutil.SubtractDays("2026-01-01", 1))
	})

	t.Run("leap year february", func(t *testing.T) {
		assert.Equal(t, "2024-02-29", dateutil.SubtractDays("2024-03-01", 1))
		assert.Equal(t, "2023-02-28", dateutil.SubtractDays("2023-03-01", 1))
	})

	t.Run("zero days is identity", func(t *testing.T) {
		assert.Equal(t, "2026-07-15", dateutil.SubtractDays("2026-07-15", 0))
	})

	t.Run("spans spring DST transition", func(t *testing.T) {
		// 30 calendar days across a typical late-March DST change must
		// land exactly 30 rows back, never 29 or 31.
		assert.Equal(t, "2026-03-16", dateutil.SubtractDays("2026-04-15", 30))
	})

	t.Run("unparseable input returned unchanged", func(t *testing.T) {
		assert.Equal(t, "not-a-date", dateutil.SubtractDays("not-a-date", 3))
	})
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2026-03-01", dateutil.AddDays("2026-02-28", 1))
	assert.Equal(t, "2024-02-29", dateutil.AddDays("2024-02-28", 1))
	assert.Equal(t, "2026-01-10", dateutil.AddDays("2026-01-03", 7))
}

func TestSubtractAddRoundTrip(t *testing.T) {
	for _, day := range []string{"2026-01-01", "2026-02-28", "2024-02-29", "2026-12-31"} {
		for _, n := range []int{1, 7, 30, 365} {
			assert.Equal(t, day, dateutil.AddDays(dateutil.SubtractDays(day, n), n),
				"day=%s n=%d", day, n)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2026-01-04 is a Sunday.
	assert.Equal(t, 0, dateutil.WeekdayOf("2026-01-04"))
	assert.Equal(t, 1, dateutil.WeekdayOf("2026-01-05"))
	assert.Equal(t, 6, dateutil.WeekdayOf("2026-01-10"))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Sun", dateutil.DayName(0))
	assert.Equal(t, "Wed", dateutil.DayName(3))
	assert.Equal(t, "Sat", dateutil.DayName(6))

	assert.Panics(t, func() { dateutil.DayName(7) })
	assert.Panics(t, func() { dateutil.DayName(-1) })
}

func TestFormat(t *testing.T) {
	t.Run("uses local calendar fields", func(t *testing.T) {
		local := time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local)
		assert.Equal(t, "2026-03-10", dateutil.Format(local))
	})
}

func TestParse(t *testing.T) {
	parsed, err := dateutil.Parse("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
	assert.Equal(t, time.Local, parsed.Location())

	_, err = dateutil.Parse("03/10/2026")
	assert.Error(t, err)
}

func TestMonthGrid(t *testing.T) {
	t.Run("leading placeholders match weekday of the 1st", func(t *testing.T) {
		// 2026-07-01 is a Wednesday, so three leading blanks.
		var cells []string
		for day := range dateutil.MonthGrid(2026, time.July) {
			cells = append(cells, day)
		}
		require.Len(t, cells, 3+31)
		assert.Equal(t, []string{"", "", ""}, cells[:3])
		assert.Equal(t, "2026-07-01", cells[3])
		assert.Equal(t, "2026-07-31", cells[len(cells)-1])
	})

	t.Run("month starting on sunday has no placeholders", func(t *testing.T) {
		// 2026-02-01 is a Sunday.
		var cells []string
		for day := range dateutil.MonthGrid(2026, time.February) {
			cells = append(cells, day)
		}
		require.Len(t, cells, 28)
		assert.Equal(t, "2026-02-01", cells[0])
	})

	t.Run("leap february", func(t *testing.T) {
		count := 0
		last := ""
		for day := range dateutil.MonthGrid(2024, time.February) {
			if day != "" {
				count++
				last = day
			}
		}
		assert.Equal(t, 29, count)
		assert.Equal(t, "2024-02-29", last)
	})

	t.Run("rangeable more than once", func(t *testing.T) {
		grid := dateutil.MonthGrid(2026, time.July)
		first, second := 0, 0
		for range grid {
			first++
		}
		for range grid {
			second++
		}
		assert.Equal(t, first, second)
	})
}

func TestWeekOf(t *testing.T) {
	// 2026-03-11 is a Wednesday; its week starts Sunday 2026-03-08.
	week := dateutil.WeekOf("2026-03-11")
	assert.Equal(t, [7]string{
		"2026-03-08", "2026-03-09", "2026-03-10", "2026-03-11",
		"2026-03-12", "2026-03-13", "2026-03-14",
	}, week)

	t.Run("sunday is its own week start", func(t *testing.T) {
		week := dateutil.WeekOf("2026-03-08")
		assert.Equal(t, "2026-03-08", week[0])
		assert.Equal(t, "2026-03-14", week[6])
	})
}
