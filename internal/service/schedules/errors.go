package schedules

import "errors"

var (
	// ErrScheduleUnavailable возвращается, когда расписание не удалось получить
	// Вызывающий трактует неделю репетитора как пустую (graceful degradation)
	ErrScheduleUnavailable = errors.New("schedules: schedule unavailable")
)
