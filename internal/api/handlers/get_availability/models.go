package get_availability

import (
	"github.com/civicreg/booking-service/internal/domain"
	getAvailability "github.com/civicreg/booking-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP модель календаря доступности центра
type AvailabilityResponse struct {
	RegistrationCenterID string             `json:"registrationCenterId"`
	AvailableDates       []DateAvailability `json:"availableDates"`
}

// DateAvailability слоты одной даты
type DateAvailability struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	FromTime        string `json:"fromTime"`
	ToTime          string `json:"toTime"`
	AvailableKiosks int    `json:"availableKiosks"`
	TotalKiosks     int    `json:"totalKiosks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	dates := make([]DateAvailability, 0, len(resp.Dates))
	for _, day := range resp.Dates {
		slots := make([]AvailableSlot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, AvailableSlot{
				FromTime:        slot.FromTime.String(),
				ToTime:          slot.ToTime.String(),
				AvailableKiosks: slot.AvailableKiosks,
				TotalKiosks:     slot.TotalKiosks,
			})
		}
		dates = append(dates, DateAvailability{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	return &AvailabilityResponse{
		RegistrationCenterID: resp.CenterID,
		AvailableDates:       dates,
	}
}
