package book_appointment

import (
	"fmt"
	"strings"

	"github.com/civicreg/booking-service/internal/domain"
)

// validateBookingRequest проверяет обязательные поля одного элемента батча
// Валидация выполняется до любых изменений состояния
func validateBookingRequest(req *BookingRequest) error {
	if strings.TrimSpace(req.PreRegistrationID) == "" {
		return fmt.Errorf("%w: preRegistrationId is required", ErrBookingDataNotFound)
	}

	if req.NewBooking == nil || req.NewBooking.IsZero() {
		return fmt.Errorf("%w: new booking details are required", ErrBookingDataNotFound)
	}

	if err := validateSlotDescriptor(req.NewBooking, "newBooking"); err != nil {
		return err
	}

	// Старый слот опционален, но если задан, то должен быть полным
	if req.OldBooking != nil && !req.OldBooking.IsZero() {
		if err := validateSlotDescriptor(req.OldBooking, "oldBooking"); err != nil {
			return err
		}
	}

	return nil
}

func validateSlotDescriptor(desc *domain.SlotDescriptor, field string) error {
	if strings.TrimSpace(desc.CenterID) == "" {
		return fmt.Errorf("%w: %s.centerId is required", ErrBookingDataNotFound, field)
	}

	if desc.Date.IsZero() {
		return fmt.Errorf("%w: %s.date is required", ErrBookingDataNotFound, field)
	}

	if desc.FromTime.IsZero() || desc.ToTime.IsZero() {
		return fmt.Errorf("%w: %s time window is required", ErrBookingDataNotFound, field)
	}

	if err := desc.FromTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s.fromTime: %v", ErrBookingDataNotFound, field, err)
	}

	if err := desc.ToTime.Validate(); err != nil {
		return fmt.Errorf("%w: %s.toTime: %v", ErrBookingDataNotFound, field, err)
	}

	if !desc.FromTime.IsBefore(desc.ToTime) {
		return fmt.Errorf("%w: %s.fromTime must be before toTime", ErrBookingDataNotFound, field)
	}

	return nil
}

// isRebook возвращает true, если элемент батча несёт старый слот
func isRebook(req *BookingRequest) bool {
	return req.OldBooking != nil && !req.OldBooking.IsZero()
}

// statusAllowsRequest проверяет, что статус заявителя допускает обработку
// элемента батча. Новое бронирование стартует из Pending_Appointment или
// Expired; rebook идёт из Booked, так как заявитель ещё держит старую запись
func statusAllowsRequest(req *BookingRequest, status domain.BookingStatus) bool {
	if domain.CanStartBooking(status) {
		return true
	}
	return isRebook(req) && status == domain.StatusBooked
}
