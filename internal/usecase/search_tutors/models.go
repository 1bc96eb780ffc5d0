package search_tutors

import (
	"time"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// Request модель запроса поиска репетиторов
type Request struct {
	UserID     int64                   // ID пользователя (для логирования, не влияет на результат)
	Page       int                     // Номер страницы, начиная с 1
	Selection  domain.DayTimeSelection // Фильтр по дням недели и блокам времени
	Price      *domain.PriceRange      // Ценовой фильтр (nil - без ограничения)
	Language   *string                 // Основной язык преподавания (опционально)
	SearchTerm *string                 // Поисковая строка (опционально)
}

// Response модель ответа с одной страницей выдачи
//
// TotalCount и TotalPages - серверные итоги ДО локальной фильтрации по
// дням/блокам: отфильтрованная страница может быть короче PageSize, а
// суммарное число подходящих репетиторов - меньше TotalCount
type Response struct {
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
	WeekStart  time.Time // Понедельник недели, по которой оценивалась доступность
	Items      []domain.TutorSummary
}

// effectiveFilters собирает доменные фильтры запроса
// Отсутствующий ценовой фильтр трактуется как безлимитный диапазон
func (r *Request) effectiveFilters() domain.TutorFilters {
	price := domain.UnconstrainedPriceRange()
	if r.Price != nil {
		price = r.Price.Normalized()
	}

	return domain.TutorFilters{
		Selection:       r.Selection,
		Price:           price,
		PrimaryLanguage: r.Language,
		SearchTerm:      r.SearchTerm,
	}
}
