package appointments

import (
	"context"

	"github.com/civicreg/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindActiveByPreRegID(ctx context.Context, preRegID string) (*domain.Booking, error)
	FindBookedByCenter(ctx context.Context, centerID string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
