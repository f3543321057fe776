package cancel_appointment

import "errors"

var (
	// ErrBookingDataNotFound возвращается при отсутствии обязательных полей запроса
	ErrBookingDataNotFound = errors.New("cancel_appointment: booking data not found")

	// ErrAvailabilityNotFound возвращается, когда строки доступности для слота нет
	ErrAvailabilityNotFound = errors.New("cancel_appointment: availability not found for slot")

	// ErrAppointmentAlreadyCanceled возвращается, когда запись уже отменена
	ErrAppointmentAlreadyCanceled = errors.New("cancel_appointment: appointment already canceled")

	// ErrAppointmentCannotBeCanceled возвращается, когда статус заявителя или
	// отсутствие активного бронирования не позволяют отмену
	ErrAppointmentCannotBeCanceled = errors.New("cancel_appointment: appointment cannot be canceled")

	// ErrCancelAppointmentFailed возвращается при инфраструктурном сбое в середине отмены
	// Запись уже помечена Canceled; синхронизация статуса или возврат киоска могли не пройти
	ErrCancelAppointmentFailed = errors.New("cancel_appointment: cancel appointment failed")

	// ErrInfrastructure возвращается, когда хранилище или сервис статусов недоступны
	// до начала каких-либо изменений
	ErrInfrastructure = errors.New("cancel_appointment: infrastructure not accessible")
)
