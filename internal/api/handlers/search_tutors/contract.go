package search_tutors

import (
	"context"

	searchTutors "github.com/m04kA/TMP-SearchService/internal/usecase/search_tutors"
)

type SearchTutorsUseCase interface {
	Execute(ctx context.Context, req *searchTutors.Request) (*searchTutors.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
