package scheduleservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrTutorNotFound возвращается, когда у сервиса нет расписания репетитора
	ErrTutorNotFound = errors.New("scheduleservice client: tutor schedule not found")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")

	// ErrUnsupportedGranularity возвращается, когда сетка источника
	// не приводится к канонической 48-слотовой
	ErrUnsupportedGranularity = errors.New("scheduleservice client: unsupported slot granularity")
)
