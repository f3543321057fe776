package masterdata

import "errors"

var (
	// ErrCenterNotFound возвращается, когда центр регистрации не найден
	ErrCenterNotFound = errors.New("masterdata client: registration center not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("masterdata client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("masterdata client: invalid response")

	// ErrServiceUnavailable возвращается, когда master-data сервис недоступен
	ErrServiceUnavailable = errors.New("masterdata client: service unavailable")
)
