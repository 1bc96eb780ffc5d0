package get_week_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// UseCase use case получения сетки доступности репетитора на текущую неделю
// Используется hover-подсказкой и страницей деталей
type UseCase struct {
	schedules    ScheduleProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedules ScheduleProvider, logger Logger) *UseCase {
	return &UseCase{
		schedules:    schedules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekAvailability: tutor=%d", req.TutorID)

	// 1. Валидация входных данных
	if req.TutorID <= 0 {
		uc.logger.Warn("GetWeekAvailability: invalid tutor id=%d", req.TutorID)
		return nil, fmt.Errorf("%w: tutorID must be positive", ErrInvalidInput)
	}

	// 2. Якорь текущей недели: считается заново на каждый запрос
	now := uc.timeProvider.Now()
	weekStart := domain.CurrentWeekMonday(now)

	// 3. Загружаем расписание недели (сквозь кэш)
	record, err := uc.schedules.WeekSchedule(ctx, req.TutorID, weekStart)
	if err != nil {
		// Graceful degradation: отдаем пустую сетку вместо ошибки
		uc.logger.Warn("GetWeekAvailability: schedule unavailable for tutor=%d: %v", req.TutorID, err)
		return &Response{
			TutorID:       req.TutorID,
			WeekStart:     weekStart,
			ScheduleKnown: false,
			Grid:          domain.BuildAvailabilityGrid(nil, weekStart),
		}, nil
	}

	uc.logger.Info("GetWeekAvailability: tutor=%d, week=%s, days with data=%d",
		req.TutorID, weekStart.Format(domain.DateFormat), len(record.Days))

	return &Response{
		TutorID:       req.TutorID,
		WeekStart:     weekStart,
		ScheduleKnown: true,
		Grid:          domain.BuildAvailabilityGrid(record, weekStart),
	}, nil
}
