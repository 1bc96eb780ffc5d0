package update_search_filters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMP-SearchService/internal/domain"
	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type serviceMock struct {
	lastSessionID uuid.UUID
	lastUpdate    search.FiltersUpdate
	state         *search.SessionState
	err           error
}

func (m *serviceMock) UpdateFilters(ctx context.Context, sessionID uuid.UUID, update search.FiltersUpdate) (*search.SessionState, error) {
	m.lastSessionID = sessionID
	m.lastUpdate = update
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

func newRouter(handler *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/search-sessions/{sessionId}/filters", handler.Handle).Methods(http.MethodPut)
	return router
}

func TestHandleUpdatesFilters(t *testing.T) {
	sessionID := uuid.New()
	svc := &serviceMock{
		state: &search.SessionState{ID: sessionID, Page: 1},
	}
	router := newRouter(NewHandler(svc, noopLogger{}))

	body := `{"days":["monday","friday"],"blocks":["evening"],"priceMin":100,"priceMax":300,"language":"en"}`
	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/search-sessions/"+sessionID.String()+"/filters", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, sessionID, svc.lastSessionID)
	require.Equal(t, []domain.DayOfWeek{domain.Monday, domain.Friday}, svc.lastUpdate.Selection.Days())
	require.Equal(t, []domain.TimeBlock{domain.BlockEvening}, svc.lastUpdate.Selection.Blocks())
	require.NotNil(t, svc.lastUpdate.Price)
	require.Equal(t, 100.0, svc.lastUpdate.Price.Min)
	require.Equal(t, "en", *svc.lastUpdate.Language)

	var resp SessionResultsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, sessionID.String(), resp.SessionID)
	require.Equal(t, 1, resp.Page)
	require.Nil(t, resp.Results)
}

func TestHandleEmptyBodyClearsFilters(t *testing.T) {
	sessionID := uuid.New()
	svc := &serviceMock{state: &search.SessionState{ID: sessionID, Page: 1}}
	router := newRouter(NewHandler(svc, noopLogger{}))

	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/search-sessions/"+sessionID.String()+"/filters", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.lastUpdate.Selection.IsEmpty())
	require.Nil(t, svc.lastUpdate.Price)
	require.Nil(t, svc.lastUpdate.Language)
	require.Nil(t, svc.lastUpdate.SearchTerm)
}

func TestHandleInvalidSessionID(t *testing.T) {
	router := newRouter(NewHandler(&serviceMock{}, noopLogger{}))

	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/search-sessions/not-a-uuid/filters", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidBlockLabel(t *testing.T) {
	router := newRouter(NewHandler(&serviceMock{}, noopLogger{}))

	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/search-sessions/"+uuid.NewString()+"/filters",
		strings.NewReader(`{"blocks":["midnight"]}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSessionNotFound(t *testing.T) {
	svc := &serviceMock{err: search.ErrSessionNotFound}
	router := newRouter(NewHandler(svc, noopLogger{}))

	req := httptest.NewRequest(http.MethodPut,
		"/api/v1/search-sessions/"+uuid.NewString()+"/filters", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
