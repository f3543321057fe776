package sync_availability

import (
	"context"
	"time"

	"github.com/civicreg/booking-service/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	Upsert(ctx context.Context, slot *domain.AvailabilitySlot) error
}

// MasterdataClient интерфейс клиента master-data сервиса
type MasterdataClient interface {
	ListCenters(ctx context.Context) ([]*domain.RegistrationCenter, error)
	GetHolidays(ctx context.Context, centerID string) ([]time.Time, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
