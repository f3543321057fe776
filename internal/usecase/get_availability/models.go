package get_availability

import (
	"time"

	"github.com/civicreg/booking-service/pkg/types"
)

// Request модель запроса доступности центра
type Request struct {
	CenterID string
}

// Response модель ответа: календарь доступности центра по датам
type Response struct {
	CenterID string
	Dates    []DateSlots
}

// DateSlots слоты одной даты
type DateSlots struct {
	Date  time.Time
	Slots []Slot
}

// Slot временное окно с числом свободных и общих киосков
type Slot struct {
	FromTime        types.TimeString
	ToTime          types.TimeString
	AvailableKiosks int
	TotalKiosks     int
}
