package book_appointment

import (
	"context"

	"github.com/civicreg/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	Reserve(ctx context.Context, desc domain.SlotDescriptor) error
	Release(ctx context.Context, desc domain.SlotDescriptor) error
}

// StatusClient интерфейс клиента сервиса статусов
type StatusClient interface {
	GetStatus(ctx context.Context, preRegID string) (domain.BookingStatus, error)
	UpdateStatus(ctx context.Context, preRegID string, status domain.BookingStatus) error
}

// SlotGuard блокировка по ключу слота
// Критическая секция покрывает только изменение счётчика киосков,
// держать её через внешние вызовы нельзя
type SlotGuard interface {
	WithLock(key string, fn func() error) error
}

// TransactionManager интерфейс для управления транзакциями
// Каждый элемент батча получает собственную единицу работы
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Canceler отменяет активное бронирование заявителя
// Первый шаг rebook; реализуется use case'ом отмены
type Canceler interface {
	Cancel(ctx context.Context, preRegID string, old domain.SlotDescriptor) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
