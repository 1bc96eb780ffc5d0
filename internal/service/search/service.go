package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TMP-SearchService/internal/domain"
	searchTutors "github.com/m04kA/TMP-SearchService/internal/usecase/search_tutors"
)

// Service оркестратор поисковых сессий
//
// Держит состояние фильтров и пагинации каждого открытого списка
// репетиторов. Инварианты:
//   - любое изменение фильтров возвращает сессию на первую страницу
//   - запрошенная страница ограничивается [1, totalPages]
//   - ответ устаревшего запроса никогда не перезаписывает состояние,
//     примененное более новым запросом (supersession по номеру выдачи)
type Service struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session

	useCase SearchTutorsUseCase
	ttl     time.Duration
	logger  Logger

	// подменяется в тестах
	now func() time.Time
}

// NewService создает новый экземпляр оркестратора поисковых сессий
// ttl - время жизни неактивной сессии
func NewService(useCase SearchTutorsUseCase, ttl time.Duration, logger Logger) *Service {
	return &Service{
		sessions: make(map[uuid.UUID]*session),
		useCase:  useCase,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateSession создает сессию поиска без фильтров на первой странице
func (svc *Service) CreateSession(ctx context.Context, userID int64) (*SessionState, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	s := &session{
		id:         uuid.New(),
		userID:     userID,
		page:       1,
		lastActive: svc.now(),
	}

	svc.mu.Lock()
	svc.sessions[s.id] = s
	svc.mu.Unlock()

	svc.logger.Info("CreateSession: session=%s user=%d", s.id, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// UpdateFilters заменяет фильтры сессии целиком и перезагружает выдачу
// Любое фактическое изменение фильтров сбрасывает страницу на первую
func (svc *Service) UpdateFilters(ctx context.Context, sessionID uuid.UUID, update FiltersUpdate) (*SessionState, error) {
	s, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	changed := !s.filters.toDomainFilters().Equal(update.toDomainFilters())
	s.filters = update
	if changed {
		s.page = 1
	}
	s.lastActive = svc.now()
	s.mu.Unlock()

	svc.logger.Info("UpdateFilters: session=%s changed=%t", sessionID, changed)

	return svc.refresh(ctx, s)
}

// GetResults возвращает страницу выдачи сессии
// page == nil - текущая страница; запрошенная страница ограничивается
// числом страниц последнего известного серверного итога
func (svc *Service) GetResults(ctx context.Context, sessionID uuid.UUID, page *int) (*SessionState, error) {
	s, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if page != nil {
		requested := *page
		if s.results != nil {
			requested = domain.ClampPage(requested, s.results.TotalPages)
		} else if requested < 1 {
			requested = 1
		}
		s.page = requested
	}
	s.lastActive = svc.now()
	s.mu.Unlock()

	return svc.refresh(ctx, s)
}

// CloseSession удаляет сессию
func (svc *Service) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, ok := svc.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}

	delete(svc.sessions, sessionID)
	svc.logger.Info("CloseSession: session=%s", sessionID)
	return nil
}

// PruneExpired удаляет сессии, неактивные дольше TTL
// Вызывается периодически из фонового цикла в main
func (svc *Service) PruneExpired() int {
	if svc.ttl <= 0 {
		return 0
	}

	deadline := svc.now().Add(-svc.ttl)

	svc.mu.Lock()
	defer svc.mu.Unlock()

	removed := 0
	for id, s := range svc.sessions {
		s.mu.Lock()
		expired := s.lastActive.Before(deadline)
		s.mu.Unlock()

		if expired {
			delete(svc.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		svc.logger.Info("PruneExpired: removed %d expired sessions", removed)
	}
	return removed
}

// refresh выполняет поиск по текущему состоянию сессии
//
// Supersession: номер запроса фиксируется до ухода в I/O, состояние
// обновляется только если к моменту ответа не был выдан более новый
// запрос. Устаревший вызов получает актуальное состояние сессии
func (svc *Service) refresh(ctx context.Context, s *session) (*SessionState, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	req := s.buildRequest()
	s.mu.Unlock()

	resp, err := svc.useCase.Execute(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("%w: refresh failed: %v", ErrInternal, err)
	}

	if seq != s.seq || seq <= s.appliedSeq {
		// Пока запрос выполнялся, был выдан более новый - его результат
		// уже применен или вот-вот применится. Этот ответ отбрасываем
		svc.logger.Info("refresh: stale response discarded, session=%s seq=%d latest=%d",
			s.id, seq, s.seq)
		return s.snapshot(), nil
	}

	s.appliedSeq = seq
	s.results = resp
	s.applyResponsePage(resp)

	return s.snapshot(), nil
}

// applyResponsePage подтягивает страницу сессии к фактической странице
// ответа и ограничивает ее свежим числом страниц
// Вызывается под s.mu
func (s *session) applyResponsePage(resp *searchTutors.Response) {
	s.page = domain.ClampPage(resp.Page, resp.TotalPages)
}

func (svc *Service) session(sessionID uuid.UUID) (*session, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	s, ok := svc.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
