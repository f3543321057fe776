package get_booked_ids

import (
	"context"

	"github.com/civicreg/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetBookedIDsForCenter(ctx context.Context, req *models.BookedIDsRequest) (*models.BookedIDsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
