package book_appointment

import "errors"

var (
	// ErrBookingDataNotFound возвращается при отсутствии обязательных полей запроса
	ErrBookingDataNotFound = errors.New("book_appointment: booking data not found")

	// ErrAvailabilityNotFound возвращается, когда строки доступности для слота нет
	ErrAvailabilityNotFound = errors.New("book_appointment: availability not found for slot")

	// ErrAppointmentCannotBeBooked возвращается, когда в слоте не осталось киосков
	ErrAppointmentCannotBeBooked = errors.New("book_appointment: appointment cannot be booked")

	// ErrSlotAlreadyBooked возвращается при проигранной гонке за последний киоск
	// или при попытке создать второе активное бронирование
	ErrSlotAlreadyBooked = errors.New("book_appointment: booking time slot already booked")

	// ErrDuplicateRebook возвращается, когда старый и новый слоты rebook совпадают
	// Такой запрос отклоняется до каких-либо изменений
	ErrDuplicateRebook = errors.New("book_appointment: old and new booking details are identical")

	// ErrAppointmentBookingFailed возвращается при инфраструктурном сбое после
	// успешного резерва; резерв к этому моменту компенсирован
	ErrAppointmentBookingFailed = errors.New("book_appointment: appointment booking failed")

	// ErrInfrastructure возвращается, когда внешний сервис или хранилище недоступны
	// до начала каких-либо изменений
	ErrInfrastructure = errors.New("book_appointment: infrastructure not accessible")
)
