package get_availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/civicreg/booking-service/internal/domain"
)

// UseCase use case получения календаря доступности центра
// Отдает окно [today+2, today+noOfDays+2]: ближайшие два дня закрыты
// для записи, чтобы центр успевал получить списки записанных
type UseCase struct {
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	noOfDays         int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, noOfDays int, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		noOfDays:         noOfDays,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: center=%s", req.CenterID)

	if strings.TrimSpace(req.CenterID) == "" {
		uc.logger.Warn("GetAvailability: empty center id")
		return nil, fmt.Errorf("%w: centerId is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	fromDate := dateOnly(now).AddDate(0, 0, domain.AvailabilityViewFromShift)
	endDate := dateOnly(now).AddDate(0, 0, uc.noOfDays+domain.AvailabilityViewFromShift)

	dates, err := uc.availabilityRepo.FindDates(ctx, req.CenterID, fromDate, endDate)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to find dates for center=%s: %v", req.CenterID, err)
		return nil, fmt.Errorf("%w: failed to find dates: %v", ErrInternal, err)
	}

	if len(dates) == 0 {
		uc.logger.Warn("GetAvailability: no availability for center=%s", req.CenterID)
		return nil, ErrAvailabilityNotFound
	}

	response := &Response{
		CenterID: req.CenterID,
		Dates:    make([]DateSlots, 0, len(dates)),
	}

	for _, date := range dates {
		slots, err := uc.availabilityRepo.FindByCenterAndDate(ctx, req.CenterID, date)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to find slots for center=%s date=%s: %v",
				req.CenterID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to find slots: %v", ErrInternal, err)
		}

		if len(slots) == 0 {
			continue
		}

		dateSlots := DateSlots{Date: date, Slots: make([]Slot, 0, len(slots))}
		for _, slot := range slots {
			dateSlots.Slots = append(dateSlots.Slots, Slot{
				FromTime:        slot.FromTime,
				ToTime:          slot.ToTime,
				AvailableKiosks: slot.AvailableKiosks,
				TotalKiosks:     slot.TotalKiosks,
			})
		}
		response.Dates = append(response.Dates, dateSlots)
	}

	uc.logger.Info("GetAvailability: center=%s, %d dates returned", req.CenterID, len(response.Dates))
	return response, nil
}

// dateOnly обнуляет компонент времени, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
