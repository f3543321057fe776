package models

import (
	"time"

	"github.com/civicreg/booking-service/internal/domain"
)

// AppointmentResponse снимок активного бронирования заявителя
type AppointmentResponse struct {
	PreRegistrationID string
	CenterID          string
	Date              time.Time
	FromTime          string
	ToTime            string
	Status            string
	LastUpdated       time.Time
}

// FromDomainBooking конвертирует domain.Booking в снимок для выдачи наружу
func FromDomainBooking(booking *domain.Booking) *AppointmentResponse {
	return &AppointmentResponse{
		PreRegistrationID: booking.PreRegistrationID,
		CenterID:          booking.CenterID,
		Date:              booking.Date,
		FromTime:          booking.FromTime.String(),
		ToTime:            booking.ToTime.String(),
		Status:            string(booking.Status),
		LastUpdated:       booking.UpdatedAt,
	}
}

// BookedIDsRequest запрос пересечения кандидатов с активными бронированиями центра
type BookedIDsRequest struct {
	CenterID           string
	PreRegistrationIDs []string
}

// BookedIDsResponse подмножество кандидатов, записанных в центре
type BookedIDsResponse struct {
	CenterID           string
	PreRegistrationIDs []string
}
