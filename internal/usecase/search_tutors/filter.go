package search_tutors

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// filterByPrice применяет локальную политику неизвестной цены
// Сервер фильтрует по цене сам, но репетиторов без цены он не отсекает:
// под суженным диапазоном они исключаются здесь
func filterByPrice(tutors []domain.TutorSummary, price domain.PriceRange) []domain.TutorSummary {
	out := make([]domain.TutorSummary, 0, len(tutors))
	for _, tutor := range tutors {
		if price.MatchesPrice(tutor.MinLessonPrice) {
			out = append(out, tutor)
		}
	}
	return out
}

// filterBySchedule оставляет репетиторов, чье недельное расписание
// удовлетворяет выбору дней/блоков
//
// Расписания загружаются параллельно, по одному на репетитора. Отказы
// изолированы: ошибка загрузки дисквалифицирует только этого репетитора
// (недоступность не обещаем), остальная страница обрабатывается дальше
func (uc *UseCase) filterBySchedule(
	ctx context.Context,
	tutors []domain.TutorSummary,
	selection domain.DayTimeSelection,
	weekStart time.Time,
) []domain.TutorSummary {
	matched := make([]bool, len(tutors))

	var wg sync.WaitGroup
	for i := range tutors {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			record, err := uc.schedules.WeekSchedule(ctx, tutors[i].ID, weekStart)
			if err != nil {
				uc.logger.Warn("SearchTutors: schedule unavailable, tutor=%d disqualified: %v",
					tutors[i].ID, err)
				return
			}

			matched[i] = domain.IsAvailable(record, selection, weekStart)
		}(i)
	}
	wg.Wait()

	out := make([]domain.TutorSummary, 0, len(tutors))
	for i, ok := range matched {
		if ok {
			out = append(out, tutors[i])
		}
	}
	return out
}
