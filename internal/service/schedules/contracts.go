package schedules

import (
	"context"
	"time"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// ScheduleServiceClient интерфейс клиента ScheduleService
type ScheduleServiceClient interface {
	FetchWeekSchedule(ctx context.Context, tutorID int64, weekStart time.Time) (*domain.ScheduleRecord, error)
}

// ScheduleCache интерфейс кэша недельных расписаний
type ScheduleCache interface {
	Get(tutorID int64, weekStart time.Time) (*domain.ScheduleRecord, bool)
	Store(record *domain.ScheduleRecord)
}

// CacheCounters счетчики попаданий кэша (опционально)
type CacheCounters interface {
	Inc()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
