package update_search_filters

import (
	"fmt"
	"strings"

	"github.com/m04kA/TMP-SearchService/internal/domain"
	"github.com/m04kA/TMP-SearchService/internal/service/search"
	searchTutors "github.com/m04kA/TMP-SearchService/internal/usecase/search_tutors"
)

// UpdateFiltersRequest HTTP request model
// Тело задает полный набор фильтров сессии, а не дельту: отсутствующее
// поле означает снятый фильтр
type UpdateFiltersRequest struct {
	Days     []string `json:"days,omitempty"`
	Blocks   []string `json:"blocks,omitempty"`
	PriceMin *float64 `json:"priceMin,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`
	Language *string  `json:"language,omitempty"`
	Search   *string  `json:"search,omitempty"`
}

// SessionResultsResponse HTTP response model
type SessionResultsResponse struct {
	SessionID string          `json:"sessionId"`
	Page      int             `json:"page"`
	Results   *ResultsPayload `json:"results,omitempty"`
}

// ResultsPayload страница выдачи сессии
type ResultsPayload struct {
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalCount int         `json:"totalCount"`
	TotalPages int         `json:"totalPages"`
	WeekStart  string      `json:"weekStart"`
	Items      []TutorItem `json:"items"`
}

// TutorItem модель репетитора в выдаче
type TutorItem struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	PrimaryLanguage string   `json:"primaryLanguage"`
	Languages       []string `json:"languages"`
	MinLessonPrice  *float64 `json:"minLessonPrice,omitempty"`
	Rating          float64  `json:"rating"`
	LessonsCount    int      `json:"lessonsCount"`
	About           string   `json:"about"`
}

// ToFiltersUpdate конвертирует HTTP запрос в модель сервиса
func (r *UpdateFiltersRequest) ToFiltersUpdate() (search.FiltersUpdate, error) {
	days := make([]domain.DayOfWeek, 0, len(r.Days))
	for _, label := range r.Days {
		day, err := domain.ParseDayLabel(label)
		if err != nil {
			return search.FiltersUpdate{}, fmt.Errorf("invalid day label %q", label)
		}
		days = append(days, day)
	}

	blocks := make([]domain.TimeBlock, 0, len(r.Blocks))
	for _, label := range r.Blocks {
		block, err := domain.ParseTimeBlock(label)
		if err != nil {
			return search.FiltersUpdate{}, fmt.Errorf("invalid time block label %q", label)
		}
		blocks = append(blocks, block)
	}

	update := search.FiltersUpdate{
		Selection: domain.NewDayTimeSelection(days, blocks),
	}

	if r.PriceMin != nil || r.PriceMax != nil {
		price := domain.UnconstrainedPriceRange()
		if r.PriceMin != nil {
			price.Min = *r.PriceMin
		}
		if r.PriceMax != nil {
			price.Max = *r.PriceMax
		}
		update.Price = &price
	}

	if r.Language != nil {
		language := strings.TrimSpace(*r.Language)
		if language != "" {
			update.Language = &language
		}
	}
	if r.Search != nil {
		term := strings.TrimSpace(*r.Search)
		if term != "" {
			update.SearchTerm = &term
		}
	}

	return update, nil
}

// FromSessionState конвертирует снапшот сессии в HTTP response
func FromSessionState(state *search.SessionState) *SessionResultsResponse {
	return &SessionResultsResponse{
		SessionID: state.ID.String(),
		Page:      state.Page,
		Results:   fromResults(state.Results),
	}
}

func fromResults(resp *searchTutors.Response) *ResultsPayload {
	if resp == nil {
		return nil
	}

	items := make([]TutorItem, len(resp.Items))
	for i, tutor := range resp.Items {
		items[i] = TutorItem{
			ID:              tutor.ID,
			Name:            tutor.Name,
			PrimaryLanguage: tutor.PrimaryLanguage,
			Languages:       tutor.Languages,
			MinLessonPrice:  tutor.MinLessonPrice,
			Rating:          tutor.Rating,
			LessonsCount:    tutor.LessonsCount,
			About:           tutor.About,
		}
	}

	return &ResultsPayload{
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalCount: resp.TotalCount,
		TotalPages: resp.TotalPages,
		WeekStart:  resp.WeekStart.Format(domain.DateFormat),
		Items:      items,
	}
}
