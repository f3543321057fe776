package sync_availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/civicreg/booking-service/internal/domain"
)

// UseCase use case синхронизации календаря доступности (Calendar Builder)
// Для каждого центра строит строки доступности на скользящее окно
// [today, today+noOfDays]; повторный запуск идемпотентен: существующие
// строки не трогаются, добавляются только недостающие
type UseCase struct {
	availabilityRepo AvailabilityRepository
	masterdata       MasterdataClient
	timeProvider     TimeProvider
	noOfDays         int
	syncWorkers      int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	masterdata MasterdataClient,
	noOfDays int,
	syncWorkers int,
	logger Logger,
) *UseCase {
	if syncWorkers <= 0 {
		syncWorkers = 1
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		masterdata:       masterdata,
		timeProvider:     &RealTimeProvider{},
		noOfDays:         noOfDays,
		syncWorkers:      syncWorkers,
		logger:           logger,
	}
}

// Execute выполняет синхронизацию календаря по всем центрам
// Центры обрабатываются параллельно с ограничением syncWorkers;
// сбой одного центра записывается в результат и не прерывает остальные
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("SyncAvailability: starting, window=%d days", uc.noOfDays)

	centers, err := uc.masterdata.ListCenters(ctx)
	if err != nil {
		uc.logger.Error("SyncAvailability: failed to list centers: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMasterdataUnavailable, err)
	}

	var (
		mu       sync.Mutex
		failures []CenterFailure
		synced   int
	)

	group := &errgroup.Group{}
	group.SetLimit(uc.syncWorkers)

	for _, center := range centers {
		center := center
		group.Go(func() error {
			if err := uc.syncCenter(ctx, center); err != nil {
				uc.logger.Error("SyncAvailability: center %s failed: %v", center.ID, err)
				mu.Lock()
				failures = append(failures, CenterFailure{CenterID: center.ID, Reason: err.Error()})
				mu.Unlock()
				// Ошибка центра изолируется, группа продолжает работу
				return nil
			}
			mu.Lock()
			synced++
			mu.Unlock()
			return nil
		})
	}

	// Ошибок из goroutine не приходит, Wait нужен только как барьер
	_ = group.Wait()

	uc.logger.Info("SyncAvailability: done, synced=%d, failed=%d", synced, len(failures))

	return &Response{
		Message:       domain.MsgMasterDataSynced,
		SyncedCenters: synced,
		FailedCenters: failures,
	}, nil
}

// syncCenter строит календарь одного центра
func (uc *UseCase) syncCenter(ctx context.Context, center *domain.RegistrationCenter) error {
	holidays, err := uc.masterdata.GetHolidays(ctx, center.ID)
	if err != nil {
		return fmt.Errorf("get holidays: %w", err)
	}

	today := dateOnly(uc.timeProvider.Now())
	endDate := today.AddDate(0, 0, uc.noOfDays)

	created := 0
	for date := today; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		slots, err := generateDaySlots(center, date, holidays)
		if err != nil {
			return err
		}

		for _, slot := range slots {
			if err := uc.availabilityRepo.Upsert(ctx, slot); err != nil {
				return fmt.Errorf("upsert slot %s %s: %w", date.Format(domain.DateFormat), slot.FromTime, err)
			}
			created++
		}
	}

	uc.logger.Info("SyncAvailability: center %s upserted %d slots", center.ID, created)
	return nil
}

// dateOnly обнуляет компонент времени, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
