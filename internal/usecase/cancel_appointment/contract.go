package cancel_appointment

import (
	"context"

	"github.com/civicreg/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindActiveByPreRegID(ctx context.Context, preRegID string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	FindByWindow(ctx context.Context, desc domain.SlotDescriptor) (*domain.AvailabilitySlot, error)
	Release(ctx context.Context, desc domain.SlotDescriptor) error
}

// StatusClient интерфейс клиента сервиса статусов
type StatusClient interface {
	GetStatus(ctx context.Context, preRegID string) (domain.BookingStatus, error)
	UpdateStatus(ctx context.Context, preRegID string, status domain.BookingStatus) error
}

// SlotGuard блокировка по ключу слота
// Критическая секция покрывает только изменение счётчика киосков
type SlotGuard interface {
	WithLock(key string, fn func() error) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator генератор идентификаторов транзакций для квитанций об отмене
type IDGenerator interface {
	TransactionID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
