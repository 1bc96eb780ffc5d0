package get_search_results

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

type SearchSessionService interface {
	GetResults(ctx context.Context, sessionID uuid.UUID, page *int) (*search.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
