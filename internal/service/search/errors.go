package search

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия поиска не найдена
	// или уже удалена по истечении TTL
	ErrSessionNotFound = errors.New("search: session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("search: internal error")
)
