package sync_availability

import (
	"fmt"
	"time"

	"github.com/civicreg/booking-service/internal/domain"
	"github.com/civicreg/booking-service/pkg/types"
)

// generateDaySlots строит строки доступности центра на одну дату
// Слоты идут с шагом PerKioskProcessing от открытия до закрытия центра;
// слот, пересекающий обеденный перерыв или время закрытия, не создается
// Праздничная дата не дает ни одного слота
func generateDaySlots(center *domain.RegistrationCenter, date time.Time, holidays []time.Time) ([]*domain.AvailabilitySlot, error) {
	if center.PerKioskProcessing <= 0 || center.NumberOfKiosks <= 0 {
		return nil, fmt.Errorf("%w: center %s: duration=%d kiosks=%d",
			ErrInvalidCenterConfig, center.ID, center.PerKioskProcessing, center.NumberOfKiosks)
	}

	if domain.IsHoliday(date, holidays) {
		return []*domain.AvailabilitySlot{}, nil
	}

	slots := make([]*domain.AvailabilitySlot, 0)
	current := center.CenterStartTime

	for current.IsBefore(center.CenterEndTime) {
		slotEnd, err := current.AddMinutes(center.PerKioskProcessing)
		if err != nil {
			return nil, fmt.Errorf("%w: center %s: %v", ErrInternal, center.ID, err)
		}
		if slotEnd.IsAfter(center.CenterEndTime) {
			break
		}

		if !overlapsLunch(center, current, slotEnd) {
			slots = append(slots, &domain.AvailabilitySlot{
				CenterID:        center.ID,
				Date:            date,
				FromTime:        current,
				ToTime:          slotEnd,
				TotalKiosks:     center.NumberOfKiosks,
				AvailableKiosks: center.NumberOfKiosks,
			})
		}

		current = slotEnd
	}

	return slots, nil
}

// overlapsLunch проверяет пересечение слота с обеденным перерывом
// Граничащие интервалы пересечением не считаются
func overlapsLunch(center *domain.RegistrationCenter, from, to types.TimeString) bool {
	if !center.HasLunchBreak() {
		return false
	}
	return from.IsBefore(center.LunchEndTime) && to.IsAfter(center.LunchStartTime)
}
