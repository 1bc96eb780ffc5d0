package schedules

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// Service сервис доступа к недельным расписаниям репетиторов
// Читает сквозь кэш: попадание отдает иммутабельную запись без похода
// в ScheduleService, промах - загружает и кэширует неделю целиком
type Service struct {
	client ScheduleServiceClient
	cache  ScheduleCache // может быть nil, если кэш выключен
	logger Logger

	cacheHits   CacheCounters
	cacheMisses CacheCounters
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(client ScheduleServiceClient, cache ScheduleCache, logger Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// EnableCacheMetrics подключает счетчики попаданий/промахов кэша
func (s *Service) EnableCacheMetrics(hits, misses CacheCounters) {
	s.cacheHits = hits
	s.cacheMisses = misses
}

// WeekSchedule возвращает расписание репетитора на неделю с weekStart
// При ошибке загрузки возвращает ErrScheduleUnavailable: вызывающий сам
// решает, считать ли репетитора недоступным или деградировать отображение
func (s *Service) WeekSchedule(ctx context.Context, tutorID int64, weekStart time.Time) (*domain.ScheduleRecord, error) {
	if s.cache != nil {
		if record, ok := s.cache.Get(tutorID, weekStart); ok {
			s.incr(s.cacheHits)
			return record, nil
		}
		s.incr(s.cacheMisses)
	}

	record, err := s.client.FetchWeekSchedule(ctx, tutorID, weekStart)
	if err != nil {
		s.logger.Warn("WeekSchedule: fetch failed for tutor=%d week=%s: %v",
			tutorID, weekStart.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: tutor=%d: %v", ErrScheduleUnavailable, tutorID, err)
	}

	if s.cache != nil {
		s.cache.Store(record)
	}

	return record, nil
}

func (s *Service) incr(counter CacheCounters) {
	if counter != nil {
		counter.Inc()
	}
}
