package create_search_session

import (
	"context"

	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

type SearchSessionService interface {
	CreateSession(ctx context.Context, userID int64) (*search.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
