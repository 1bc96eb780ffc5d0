package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromSlot(t *testing.T) {
	tests := []struct {
		name        string
		index       int
		slotMinutes int
		want        TimeString
		wantErr     bool
	}{
		{name: "start of day", index: 0, slotMinutes: 30, want: "00:00"},
		{name: "mid morning", index: 10, slotMinutes: 30, want: "05:00"},
		{name: "afternoon boundary", index: 24, slotMinutes: 30, want: "12:00"},
		{name: "evening boundary", index: 36, slotMinutes: 30, want: "18:00"},
		{name: "last slot", index: 47, slotMinutes: 30, want: "23:30"},
		{name: "hour granularity", index: 13, slotMinutes: 60, want: "13:00"},
		{name: "negative index", index: -1, slotMinutes: 30, wantErr: true},
		{name: "past midnight", index: 48, slotMinutes: 30, wantErr: true},
		{name: "zero duration", index: 1, slotMinutes: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromSlot(tt.index, tt.slotMinutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	require.Equal(t, 570, ts.Minutes())

	_, err = NewTimeStringFromString("25:00")
	require.Error(t, err)
}

func TestTimeStringOrdering(t *testing.T) {
	morning := TimeString("09:00")
	evening := TimeString("19:30")

	require.True(t, morning.IsBefore(evening))
	require.True(t, evening.IsAfter(morning))
	require.False(t, morning.IsAfter(morning))
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("23:00")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	require.Equal(t, TimeString("23:30"), next)

	_, err = ts.AddMinutes(60)
	require.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 6, 3, 14, 30, 45, 0, time.Local))
	require.Equal(t, TimeString("14:30"), ts)
}
