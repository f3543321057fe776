package cancel_appointment

import (
	"time"

	"github.com/civicreg/booking-service/internal/domain"
	cancelAppointment "github.com/civicreg/booking-service/internal/usecase/cancel_appointment"
	"github.com/civicreg/booking-service/pkg/types"
)

// CancelAppointmentRequest HTTP модель запроса на отмену
type CancelAppointmentRequest struct {
	PreRegistrationID    string `json:"preRegistrationId"`
	RegistrationCenterID string `json:"registrationCenterId"`
	AppointmentDate      string `json:"appointmentDate"` // "2026-09-15"
	TimeSlotFrom         string `json:"timeSlotFrom"`    // "10:00"
	TimeSlotTo           string `json:"timeSlotTo"`      // "10:15"
}

// CancelAppointmentResponse HTTP модель ответа
type CancelAppointmentResponse struct {
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelAppointmentRequest) ToUseCaseRequest() (*cancelAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	fromTime, err := types.NewTimeStringFromString(r.TimeSlotFrom)
	if err != nil {
		return nil, err
	}

	toTime, err := types.NewTimeStringFromString(r.TimeSlotTo)
	if err != nil {
		return nil, err
	}

	return &cancelAppointment.Request{
		PreRegistrationID: r.PreRegistrationID,
		CenterID:          r.RegistrationCenterID,
		Date:              date,
		FromTime:          fromTime,
		ToTime:            toTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelAppointment.Response) *CancelAppointmentResponse {
	return &CancelAppointmentResponse{
		TransactionID: resp.TransactionID,
		Message:       resp.Message,
	}
}
