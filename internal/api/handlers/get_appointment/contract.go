package get_appointment

import (
	"context"

	"github.com/civicreg/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetAppointmentDetails(ctx context.Context, preRegID string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
