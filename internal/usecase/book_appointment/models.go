package book_appointment

import (
	"github.com/civicreg/booking-service/internal/domain"
)

// Request модель батч-запроса на бронирование
// Каждый элемент является независимым запросом одного заявителя
type Request struct {
	Requests []BookingRequest
}

// BookingRequest запрос одного заявителя
// OldBooking задан только для rebook: сначала отменяется старый слот,
// затем бронируется новый
type BookingRequest struct {
	PreRegistrationID string
	OldBooking        *domain.SlotDescriptor
	NewBooking        *domain.SlotDescriptor
}

// Response модель ответа: по одному результату на каждого заявителя
type Response struct {
	Results []BookingResult
}

// BookingResult итог обработки одного заявителя
// Ошибка элемента не влияет на соседние элементы батча
type BookingResult struct {
	PreRegistrationID string
	Status            domain.BookingStatus
	Message           string
	Booked            bool
}
