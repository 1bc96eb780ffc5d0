package get_week_availability

import (
	"time"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// Request модель запроса сетки доступности на текущую неделю
type Request struct {
	TutorID int64
}

// Response модель ответа с сеткой доступности день x блок
//
// ScheduleKnown == false означает, что расписание загрузить не удалось:
// сетка отдается пустой (unknown availability), а не ошибкой - просмотр
// карточки репетитора остается рабочим
type Response struct {
	TutorID       int64
	WeekStart     time.Time
	ScheduleKnown bool
	Grid          []domain.DayAvailability
}
