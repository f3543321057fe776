package get_appointment

import (
	"time"

	"github.com/civicreg/booking-service/internal/domain"
	"github.com/civicreg/booking-service/internal/service/appointments/models"
)

// AppointmentResponse HTTP модель активного бронирования
type AppointmentResponse struct {
	PreRegistrationID    string `json:"preRegistrationId"`
	RegistrationCenterID string `json:"registrationCenterId"`
	AppointmentDate      string `json:"appointmentDate"`
	TimeSlotFrom         string `json:"timeSlotFrom"`
	TimeSlotTo           string `json:"timeSlotTo"`
	Status               string `json:"status"`
	LastUpdated          string `json:"lastUpdated"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		PreRegistrationID:    resp.PreRegistrationID,
		RegistrationCenterID: resp.CenterID,
		AppointmentDate:      resp.Date.Format(domain.DateFormat),
		TimeSlotFrom:         resp.FromTime,
		TimeSlotTo:           resp.ToTime,
		Status:               resp.Status,
		LastUpdated:          resp.LastUpdated.Format(time.RFC3339),
	}
}
