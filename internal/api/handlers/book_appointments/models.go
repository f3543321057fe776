package book_appointments

import (
	"fmt"
	"time"

	"github.com/civicreg/booking-service/internal/domain"
	bookAppointment "github.com/civicreg/booking-service/internal/usecase/book_appointment"
	"github.com/civicreg/booking-service/pkg/types"
)

// SlotDetails HTTP модель координат слота
type SlotDetails struct {
	RegistrationCenterID string `json:"registrationCenterId"`
	AppointmentDate      string `json:"appointmentDate"` // "2026-09-15"
	TimeSlotFrom         string `json:"timeSlotFrom"`    // "10:00"
	TimeSlotTo           string `json:"timeSlotTo"`      // "10:15"
}

// BookingRequestItem HTTP модель одного элемента батча
type BookingRequestItem struct {
	PreRegistrationID string       `json:"preRegistrationId"`
	OldBookingDetails *SlotDetails `json:"oldBookingDetails,omitempty"`
	NewBookingDetails *SlotDetails `json:"newBookingDetails"`
}

// BookAppointmentsRequest HTTP модель батч-запроса
type BookAppointmentsRequest struct {
	Requests []BookingRequestItem `json:"requests"`
}

// BookingResultItem HTTP модель результата одного заявителя
type BookingResultItem struct {
	PreRegistrationID string `json:"preRegistrationId"`
	BookingStatus     string `json:"bookingStatus,omitempty"`
	BookingMessage    string `json:"bookingMessage"`
	Booked            bool   `json:"booked"`
}

// BookAppointmentsResponse HTTP модель ответа на батч
type BookAppointmentsResponse struct {
	Status  bool                `json:"status"`
	Results []BookingResultItem `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentsRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	requests := make([]bookAppointment.BookingRequest, 0, len(r.Requests))

	for i, item := range r.Requests {
		var oldSlot *domain.SlotDescriptor
		if item.OldBookingDetails != nil {
			desc, err := item.OldBookingDetails.toDescriptor()
			if err != nil {
				return nil, fmt.Errorf("requests[%d].oldBookingDetails: %w", i, err)
			}
			oldSlot = desc
		}

		var newSlot *domain.SlotDescriptor
		if item.NewBookingDetails != nil {
			desc, err := item.NewBookingDetails.toDescriptor()
			if err != nil {
				return nil, fmt.Errorf("requests[%d].newBookingDetails: %w", i, err)
			}
			newSlot = desc
		}

		requests = append(requests, bookAppointment.BookingRequest{
			PreRegistrationID: item.PreRegistrationID,
			OldBooking:        oldSlot,
			NewBooking:        newSlot,
		})
	}

	return &bookAppointment.Request{Requests: requests}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Общий флаг статуса true, только если все элементы забронированы
func FromUseCaseResponse(resp *bookAppointment.Response) *BookAppointmentsResponse {
	results := make([]BookingResultItem, 0, len(resp.Results))
	allBooked := true

	for _, result := range resp.Results {
		if !result.Booked {
			allBooked = false
		}
		results = append(results, BookingResultItem{
			PreRegistrationID: result.PreRegistrationID,
			BookingStatus:     string(result.Status),
			BookingMessage:    result.Message,
			Booked:            result.Booked,
		})
	}

	return &BookAppointmentsResponse{
		Status:  allBooked,
		Results: results,
	}
}

func (s *SlotDetails) toDescriptor() (*domain.SlotDescriptor, error) {
	date, err := time.Parse(domain.DateFormat, s.AppointmentDate)
	if err != nil {
		return nil, err
	}

	fromTime, err := types.NewTimeStringFromString(s.TimeSlotFrom)
	if err != nil {
		return nil, err
	}

	toTime, err := types.NewTimeStringFromString(s.TimeSlotTo)
	if err != nil {
		return nil, err
	}

	return &domain.SlotDescriptor{
		CenterID: s.RegistrationCenterID,
		Date:     date,
		FromTime: fromTime,
		ToTime:   toTime,
	}, nil
}
