package search_tutors

import (
	"context"
	"fmt"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// UseCase use case поиска репетиторов с гибридной фильтрацией
//
// Фильтры по цене, языку и поисковой строке выполняет TutorDirectory
// (predicate pushdown), фильтр по дням/блокам оценивается локально по
// загруженным недельным расписаниям. Якорь недели пересчитывается на
// каждый запрос, поэтому переход через границу недели подхватывается
// следующим же поиском
type UseCase struct {
	directory    TutorDirectoryClient
	schedules    ScheduleProvider
	pageSize     int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory TutorDirectoryClient,
	schedules ScheduleProvider,
	pageSize int,
	logger Logger,
) *UseCase {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	return &UseCase{
		directory:    directory,
		schedules:    schedules,
		pageSize:     pageSize,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case поиска репетиторов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchTutors: user=%d, page=%d, days=%v, blocks=%v",
		req.UserID, req.Page, req.Selection.Days(), req.Selection.Blocks())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchTutors: validation failed: %v", err)
		return nil, err
	}

	// 2. Якорь текущей недели: считается заново на каждый запрос
	now := uc.timeProvider.Now()
	weekStart := domain.CurrentWeekMonday(now)

	// 3. Собираем постраничный запрос к TutorDirectory
	query := domain.NewPageQuery(req.effectiveFilters(), uc.pageSize).WithPage(req.Page)

	// 4. Серверная часть фильтрации
	page, err := uc.directory.FetchTutorPage(ctx, query)
	if err != nil {
		uc.logger.Error("SearchTutors: directory fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	items := page.Items

	// 5. Локальная политика неизвестной цены
	items = filterByPrice(items, query.Filters.Price)

	// 6. Локальная фильтрация по дням/блокам
	// Пустой выбор пропускает всех: расписания не загружаются вовсе
	if !req.Selection.IsEmpty() {
		items = uc.filterBySchedule(ctx, items, req.Selection, weekStart)
	}

	uc.logger.Info("SearchTutors: page=%d, server total=%d, after local filters=%d",
		query.Page, page.TotalCount, len(items))

	return &Response{
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: domain.TotalPages(page.TotalCount, query.PageSize),
		WeekStart:  weekStart,
		Items:      items,
	}, nil
}
