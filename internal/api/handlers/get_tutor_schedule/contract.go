package get_tutor_schedule

import (
	"context"

	getWeekAvailability "github.com/m04kA/TMP-SearchService/internal/usecase/get_week_availability"
)

type GetWeekAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getWeekAvailability.Request) (*getWeekAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
