package search_tutors

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDirectoryUnavailable возвращается, когда TutorDirectory недоступен
	// Вызывающий показывает пустую выдачу с баннером ошибки
	ErrDirectoryUnavailable = errors.New("tutor directory unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
