package get_search_results

import (
	"github.com/m04kA/TMP-SearchService/internal/domain"
	"github.com/m04kA/TMP-SearchService/internal/service/search"
	searchTutors "github.com/m04kA/TMP-SearchService/internal/usecase/search_tutors"
)

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
