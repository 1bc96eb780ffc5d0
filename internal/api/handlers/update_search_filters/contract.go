package update_search_filters

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

type SearchSessionService interface {
	UpdateFilters(ctx context.Context, sessionID uuid.UUID, update search.FiltersUpdate) (*search.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
