package statusservice

import "errors"

var (
	// ErrPreRegistrationNotFound возвращается, когда заявка не найдена в сервисе статусов
	ErrPreRegistrationNotFound = errors.New("statusservice client: pre-registration not found")

	// ErrUnknownStatus возвращается, когда сервис вернул неизвестный код статуса
	ErrUnknownStatus = errors.New("statusservice client: unknown status code")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("statusservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("statusservice client: invalid response")

	// ErrServiceUnavailable возвращается, когда сервис статусов недоступен
	// Отличается от бизнес-ошибок: вызывающий код обязан откатить резерв слота
	ErrServiceUnavailable = errors.New("statusservice client: service unavailable")
)
