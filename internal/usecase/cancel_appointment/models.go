package cancel_appointment

import (
	"time"

	"github.com/civicreg/booking-service/internal/domain"
	"github.com/civicreg/booking-service/pkg/types"
)

// Request модель запроса на отмену бронирования
type Request struct {
	PreRegistrationID string
	CenterID          string
	Date              time.Time
	FromTime          types.TimeString
	ToTime            types.TimeString
}

// Slot возвращает дескриптор слота из запроса
func (r *Request) Slot() domain.SlotDescriptor {
	return domain.SlotDescriptor{
		CenterID: r.CenterID,
		Date:     r.Date,
		FromTime: r.FromTime,
		ToTime:   r.ToTime,
	}
}

// Response модель ответа об отмене: квитанция с идентификатором транзакции
type Response struct {
	TransactionID string
	Message       string
}
