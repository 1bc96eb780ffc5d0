package search

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TMP-SearchService/internal/domain"
	searchTutors "github.com/m04kA/TMP-SearchService/internal/usecase/search_tutors"
)

// FiltersUpdate полный набор фильтров сессии
// Сессия хранит фильтры явным иммутабельным состоянием и заменяет их
// целиком (reducer-стиль), а не правит поля по месту
type FiltersUpdate struct {
	Selection  domain.DayTimeSelection
	Price      *domain.PriceRange
	Language   *string
	SearchTerm *string
}

func (u FiltersUpdate) toDomainFilters() domain.TutorFilters {
	price := domain.UnconstrainedPriceRange()
	if u.Price != nil {
		price = u.Price.Normalized()
	}

	return domain.TutorFilters{
		Selection:       u.Selection,
		Price:           price,
		PrimaryLanguage: u.Language,
		SearchTerm:      u.SearchTerm,
	}
}

// session состояние одного просмотра списка репетиторов
//
// seq - номер последнего выданного запроса, appliedSeq - номер запроса,
// чей результат применен к состоянию. Ответ устаревшего запроса (после
// него выдан более новый) состояние не перезаписывает: побеждает
// последний выданный, а не последний пришедший
type session struct {
	mu sync.Mutex

	id      uuid.UUID
	userID  int64
	filters FiltersUpdate
	page    int

	seq        uint64
	appliedSeq uint64
	results    *searchTutors.Response

	lastActive time.Time
}

// buildRequest собирает запрос use case из текущего состояния сессии
// Вызывается под mu
func (s *session) buildRequest() *searchTutors.Request {
	return &searchTutors.Request{
		UserID:     s.userID,
		Page:       s.page,
		Selection:  s.filters.Selection,
		Price:      s.filters.Price,
		Language:   s.filters.Language,
		SearchTerm: s.filters.SearchTerm,
	}
}

// SessionState снапшот сессии для слоя API
type SessionState struct {
	ID      uuid.UUID
	UserID  int64
	Page    int
	Results *searchTutors.Response
}

// snapshot возвращает копию наблюдаемого состояния
// Вызывается под mu
func (s *session) snapshot() *SessionState {
	return &SessionState{
		ID:      s.id,
		UserID:  s.userID,
		Page:    s.page,
		Results: s.results,
	}
}
