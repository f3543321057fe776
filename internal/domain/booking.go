package domain

import (
	"time"

	"github.com/civicreg/booking-service/pkg/types"
)

// BookingStatus статус бронирования, синхронизируемый с внешним сервисом статусов заявок
type BookingStatus string

const (
	StatusPendingAppointment BookingStatus = "Pending_Appointment"
	StatusBooked             BookingStatus = "Booked"
	StatusCanceled           BookingStatus = "Canceled"
	StatusExpired            BookingStatus = "Expired"
)

// Booking запись о бронировании киоска заявителем
// На один preRegistrationId в любой момент времени существует не больше
// одной записи в статусе Booked
type Booking struct {
	ID                int64
	PreRegistrationID string
	CenterID          string
	Date              time.Time
	FromTime          types.TimeString
	ToTime            types.TimeString
	Status            BookingStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive возвращает true, если бронирование занимает место в слоте
func (b *Booking) IsActive() bool {
	return b.Status == StatusBooked
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusBooked
}

// CanStartBooking возвращает true, если статус заявителя позволяет начать новое бронирование
func CanStartBooking(status BookingStatus) bool {
	return status == StatusPendingAppointment || status == StatusExpired
}

// SlotDescriptor координаты слота в запросе на бронирование или отмену
type SlotDescriptor struct {
	CenterID string
	Date     time.Time
	FromTime types.TimeString
	ToTime   types.TimeString
}

// IsZero возвращает true, если дескриптор не заполнен
func (d *SlotDescriptor) IsZero() bool {
	return d == nil || (d.CenterID == "" && d.Date.IsZero() && d.FromTime.IsZero() && d.ToTime.IsZero())
}

// Equal сравнивает два дескриптора слота
// Используется для отсечения rebook, где старый и новый слот совпадают
func (d *SlotDescriptor) Equal(other *SlotDescriptor) bool {
	if d == nil || other == nil {
		return false
	}
	return d.CenterID == other.CenterID &&
		IsSameDay(d.Date, other.Date) &&
		d.FromTime == other.FromTime &&
		d.ToTime == other.ToTime
}

// SlotKey возвращает ключ слота для таблицы блокировок
func (d *SlotDescriptor) SlotKey() string {
	return d.CenterID + "|" + d.Date.Format(DateFormat) + "|" + d.FromTime.String() + "|" + d.ToTime.String()
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
