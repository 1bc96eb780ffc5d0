package domain

// TutorSummary represents a tutor entry of the directory listing
type TutorSummary struct {
	ID              int64
	Name            string
	PrimaryLanguage string
	Languages       []string
	// MinLessonPrice lowest-priced lesson of the tutor
	// nil - у репетитора нет ни одного урока с ценой
	MinLessonPrice *float64
	Rating         float64
	LessonsCount   int
	About          string
}

// HasKnownPrice returns true if the tutor has at least one priced lesson
func (t *TutorSummary) HasKnownPrice() bool {
	return t.MinLessonPrice != nil
}

// TutorPage represents one page of the tutor directory listing
// TotalCount - серверный итог ДО локальной фильтрации по дням/блокам,
// количество страниц считается от него (см. QueryOrchestrator)
type TutorPage struct {
	Items      []TutorSummary
	TotalCount int
}
