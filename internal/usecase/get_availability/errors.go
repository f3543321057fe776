package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrAvailabilityNotFound возвращается, когда у центра нет ни одной строки доступности
	ErrAvailabilityNotFound = errors.New("get_availability: no availability found for center")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
