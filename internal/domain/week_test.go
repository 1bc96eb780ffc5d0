package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentWeekMonday(t *testing.T) {
	// 2024-06-03 - понедельник
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		now  time.Time
	}{
		{"monday morning", time.Date(2024, 6, 3, 8, 30, 0, 0, time.Local)},
		{"monday midnight", time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)},
		{"wednesday", time.Date(2024, 6, 5, 14, 0, 0, 0, time.Local)},
		{"saturday", time.Date(2024, 6, 8, 23, 59, 59, 0, time.Local)},
		{"sunday night", time.Date(2024, 6, 9, 23, 0, 0, 0, time.Local)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CurrentWeekMonday(tc.now)
			require.Equal(t, time.Monday, got.Weekday())
			require.True(t, got.Equal(monday), "want %s, got %s", monday, got)
		})
	}
}

func TestCurrentWeekMondayAcrossYearBoundary(t *testing.T) {
	// 2025-01-01 - среда, понедельник этой недели 2024-12-30
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)

	got := CurrentWeekMonday(now)

	require.Equal(t, time.Monday, got.Weekday())
	require.Equal(t, 2024, got.Year())
	require.Equal(t, time.December, got.Month())
	require.Equal(t, 30, got.Day())
	require.Equal(t, 0, got.Hour())
}

func TestDateForDay(t *testing.T) {
	weekStart := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)

	require.Equal(t, 3, DateForDay(weekStart, Monday).Day())
	require.Equal(t, 5, DateForDay(weekStart, Wednesday).Day())
	require.Equal(t, 9, DateForDay(weekStart, Sunday).Day())
}

func TestSameDateIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local)
	b := time.Date(2024, 6, 5, 18, 45, 12, 0, time.Local)
	c := time.Date(2024, 6, 6, 0, 0, 0, 0, time.Local)

	require.True(t, SameDate(a, b))
	require.False(t, SameDate(a, c))
}

func TestParseDayLabel(t *testing.T) {
	cases := []struct {
		label string
		want  DayOfWeek
	}{
		{"Monday", Monday},
		{"mon", Monday},
		{"wednesday", Wednesday},
		{"Wed", Wednesday},
		{"sunday", Sunday},
		{"Понедельник", Monday},
		{"пн", Monday},
		{"среда", Wednesday},
		{"ВС", Sunday},
	}

	for _, tc := range cases {
		got, err := ParseDayLabel(tc.label)
		require.NoError(t, err, "label %q", tc.label)
		require.Equal(t, tc.want, got, "label %q", tc.label)
	}
}

func TestParseDayLabelUnknown(t *testing.T) {
	_, err := ParseDayLabel("someday")
	require.Error(t, err)
}

func TestMustParseDayLabelPanicsOnUnknownLabel(t *testing.T) {
	require.Panics(t, func() {
		MustParseDayLabel("yesterday")
	})
}

func TestDayOfWeekString(t *testing.T) {
	require.Equal(t, "Monday", Monday.String())
	require.Equal(t, "Sunday", Sunday.String())
}
