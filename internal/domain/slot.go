package domain

import (
	"time"

	"github.com/civicreg/booking-service/pkg/types"
)

// AvailabilitySlot строка доступности: временное окно в центре регистрации
// с конечным числом киосков
// Создается Calendar Builder'ом, никогда не удаляется; available_kiosks
// меняется только через reserve/release
type AvailabilitySlot struct {
	ID              int64
	CenterID        string
	Date            time.Time
	FromTime        types.TimeString
	ToTime          types.TimeString
	TotalKiosks     int
	AvailableKiosks int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

