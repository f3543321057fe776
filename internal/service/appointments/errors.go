package appointments

import "errors"

var (
	// ErrBookingNotFound возвращается, когда у заявителя нет активного бронирования
	ErrBookingNotFound = errors.New("appointments.service: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
