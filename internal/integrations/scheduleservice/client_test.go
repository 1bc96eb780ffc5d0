package scheduleservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var weekStart = time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)

func TestFetchWeekScheduleCanonicalGrid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/internal/tutors/15/schedule", r.URL.Path)
		require.Equal(t, "2024-06-03", r.URL.Query().Get("weekStart"))

		w.Write([]byte(`{
			"tutorId": 15,
			"weekStart": "2024-06-03",
			"slotsPerDay": 48,
			"days": [
				{"date": "2024-06-03", "availableSlots": [10, 11, 40]},
				{"date": "2024-06-05", "availableSlots": []}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	record, err := client.FetchWeekSchedule(context.Background(), 15, weekStart)

	require.NoError(t, err)
	require.Equal(t, int64(15), record.TutorID)
	require.Len(t, record.Days, 2)
	require.Equal(t, []domain.Slot{10, 11, 40}, record.Days[0].AvailableSlots)
	require.Empty(t, record.Days[1].AvailableSlots)
}

// Источник с 24-юнитовой сеткой: каждый юнит раскрывается в два слота
func TestFetchWeekScheduleCoarseGridNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"tutorId": 15,
			"weekStart": "2024-06-03",
			"slotsPerDay": 24,
			"days": [
				{"date": "2024-06-03", "availableSlots": [5, 20]}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	record, err := client.FetchWeekSchedule(context.Background(), 15, weekStart)

	require.NoError(t, err)
	require.Equal(t, []domain.Slot{10, 11, 40, 41}, record.Days[0].AvailableSlots)
}

func TestFetchWeekScheduleUnsupportedGranularity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tutorId": 15, "weekStart": "2024-06-03", "slotsPerDay": 42, "days": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	_, err := client.FetchWeekSchedule(context.Background(), 15, weekStart)

	require.ErrorIs(t, err, ErrUnsupportedGranularity)
}

func TestFetchWeekScheduleNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no schedule", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	_, err := client.FetchWeekSchedule(context.Background(), 15, weekStart)

	require.ErrorIs(t, err, ErrTutorNotFound)
}

func TestFetchWeekScheduleServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	_, err := client.FetchWeekSchedule(context.Background(), 15, weekStart)

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestNormalizeSlotsDropsOutOfRangeAndDuplicates(t *testing.T) {
	slots := normalizeSlots([]int{3, 3, 47, 48, -1}, 1)

	require.Equal(t, []domain.Slot{3, 47}, slots)
}
