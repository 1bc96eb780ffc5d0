package tutordirectory

import "github.com/m04kA/TMP-SearchService/internal/domain"

// TutorItem модель репетитора из TutorDirectory
type TutorItem struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	PrimaryLanguage string   `json:"primaryLanguage"`
	Languages       []string `json:"languages"`
	MinLessonPrice  *float64 `json:"minLessonPrice"` // nil - нет уроков с ценой
	Rating          float64  `json:"rating"`
	LessonsCount    int      `json:"lessonsCount"`
	About           string   `json:"about"`
}

// TutorPageResponse модель страницы выдачи TutorDirectory
type TutorPageResponse struct {
	Items      []TutorItem `json:"items"`
	TotalCount int         `json:"totalCount"`
}

// ErrorResponse модель ошибки от TutorDirectory
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует страницу выдачи в доменную модель
func (r *TutorPageResponse) ToDomain() *domain.TutorPage {
	items := make([]domain.TutorSummary, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.TutorSummary{
			ID:              item.ID,
			Name:            item.Name,
			PrimaryLanguage: item.PrimaryLanguage,
			Languages:       item.Languages,
			MinLessonPrice:  item.MinLessonPrice,
			Rating:          item.Rating,
			LessonsCount:    item.LessonsCount,
			About:           item.About,
		}
	}

	return &domain.TutorPage{
		Items:      items,
		TotalCount: r.TotalCount,
	}
}
