package book_appointments

import (
	"context"

	bookAppointment "github.com/civicreg/booking-service/internal/usecase/book_appointment"
)

type BookAppointmentsUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
