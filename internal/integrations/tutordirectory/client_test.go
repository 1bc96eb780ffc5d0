package tutordirectory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMP-SearchService/internal/domain"
	"github.com/m04kA/TMP-SearchService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestFetchTutorPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/internal/tutors", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "20", r.URL.Query().Get("pageSize"))
		require.Equal(t, "100", r.URL.Query().Get("priceMin"))
		require.Equal(t, "500", r.URL.Query().Get("priceMax"))
		require.Equal(t, "english", r.URL.Query().Get("language"))
		require.Equal(t, "math", r.URL.Query().Get("search"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id": 7, "name": "Anna", "primaryLanguage": "english", "minLessonPrice": 250, "rating": 4.9, "lessonsCount": 120},
				{"id": 8, "name": "Boris", "primaryLanguage": "english", "minLessonPrice": null, "rating": 4.1, "lessonsCount": 3}
			],
			"totalCount": 42
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	filters := domain.TutorFilters{
		Price:           domain.PriceRange{Min: 100, Max: 500},
		PrimaryLanguage: ptr.Ptr("english"),
		SearchTerm:      ptr.Ptr("math"),
	}
	query := domain.NewPageQuery(filters, 20).WithPage(2)

	page, err := client.FetchTutorPage(context.Background(), query)

	require.NoError(t, err)
	require.Equal(t, 42, page.TotalCount)
	require.Len(t, page.Items, 2)
	require.Equal(t, int64(7), page.Items[0].ID)
	require.True(t, page.Items[0].HasKnownPrice())
	require.Equal(t, 250.0, *page.Items[0].MinLessonPrice)
	require.False(t, page.Items[1].HasKnownPrice())
}

func TestFetchTutorPageOmitsUnconstrainedPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.False(t, r.URL.Query().Has("priceMin"))
		require.False(t, r.URL.Query().Has("priceMax"))
		w.Write([]byte(`{"items": [], "totalCount": 0}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})
	query := domain.NewPageQuery(domain.TutorFilters{Price: domain.UnconstrainedPriceRange()}, 20)

	page, err := client.FetchTutorPage(context.Background(), query)

	require.NoError(t, err)
	require.Empty(t, page.Items)
}

func TestFetchTutorPageBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad page", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	_, err := client.FetchTutorPage(context.Background(), domain.NewPageQuery(domain.TutorFilters{}, 20))

	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestFetchTutorPageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	_, err := client.FetchTutorPage(context.Background(), domain.NewPageQuery(domain.TutorFilters{}, 20))

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchTutorPageMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	_, err := client.FetchTutorPage(context.Background(), domain.NewPageQuery(domain.TutorFilters{}, 20))

	require.ErrorIs(t, err, ErrInvalidResponse)
}
