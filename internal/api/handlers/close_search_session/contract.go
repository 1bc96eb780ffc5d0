package close_search_session

import (
	"context"

	"github.com/google/uuid"
)

type SearchSessionService interface {
	CloseSession(ctx context.Context, sessionID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
