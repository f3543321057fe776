package sync_availability

import "errors"

var (
	// ErrMasterdataUnavailable возвращается, когда список центров получить не удалось
	// Без списка центров синхронизация не имеет смысла
	ErrMasterdataUnavailable = errors.New("sync_availability: masterdata service unavailable")

	// ErrInvalidCenterConfig возвращается при некорректной конфигурации центра
	// (нулевая длительность слота, нулевое число киосков)
	ErrInvalidCenterConfig = errors.New("sync_availability: invalid center configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_availability: internal error")
)
