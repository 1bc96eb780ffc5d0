package tutordirectory

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("tutordirectory client: internal error")

	// ErrInvalidQuery возвращается, когда сервис отверг параметры запроса
	ErrInvalidQuery = errors.New("tutordirectory client: invalid query")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("tutordirectory client: invalid response")
)
