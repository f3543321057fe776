package sync_availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicreg/booking-service/internal/domain"
	"github.com/civicreg/booking-service/pkg/types"
)

type fakeAvailabilityRepo struct {
	mu       sync.Mutex
	upserted []*domain.AvailabilitySlot
	upsertFn func(ctx context.Context, slot *domain.AvailabilitySlot) error
}

func (f *fakeAvailabilityRepo) Upsert(ctx context.Context, slot *domain.AvailabilitySlot) error {
	if f.upsertFn != nil {
		if err := f.upsertFn(ctx, slot); err != nil {
			return err
		}
	}
	f.mu.Lock()
	f.upserted = append(f.upserted, slot)
	f.mu.Unlock()
	return nil
}

func (f *fakeAvailabilityRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserted)
}

type fakeMasterdata struct {
	listCentersFn func(ctx context.Context) ([]*domain.RegistrationCenter, error)
	getHolidaysFn func(ctx context.Context, centerID string) ([]time.Time, error)
}

func (f *fakeMasterdata) ListCenters(ctx context.Context) ([]*domain.RegistrationCenter, error) {
	return f.listCentersFn(ctx)
}

func (f *fakeMasterdata) GetHolidays(ctx context.Context, centerID string) ([]time.Time, error) {
	if f.getHolidaysFn == nil {
		return nil, nil
	}
	return f.getHolidaysFn(ctx, centerID)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCenter(id string) *domain.RegistrationCenter {
	return &domain.RegistrationCenter{
		ID:                 id,
		Name:               "Test Center",
		CenterStartTime:    types.TimeString("09:00"),
		CenterEndTime:      types.TimeString("17:00"),
		LunchStartTime:     types.TimeString("13:00"),
		LunchEndTime:       types.TimeString("14:00"),
		PerKioskProcessing: 15,
		NumberOfKiosks:     4,
	}
}

func TestGenerateDaySlots(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("skips lunch break", func(t *testing.T) {
		slots, err := generateDaySlots(testCenter("CTR-1"), date, nil)
		require.NoError(t, err)

		// 8 рабочих часов минус час обеда, слоты по 15 минут
		assert.Len(t, slots, 28)
		for _, slot := range slots {
			assert.False(t, slot.FromTime.IsBefore("14:00") && slot.ToTime.IsAfter("13:00"),
				"slot %s-%s overlaps lunch", slot.FromTime, slot.ToTime)
			assert.Equal(t, 4, slot.TotalKiosks)
			assert.Equal(t, 4, slot.AvailableKiosks)
		}
	})

	t.Run("holiday yields no slots", func(t *testing.T) {
		slots, err := generateDaySlots(testCenter("CTR-1"), date, []time.Time{date})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("no lunch break", func(t *testing.T) {
		center := testCenter("CTR-1")
		center.LunchStartTime = ""
		center.LunchEndTime = ""

		slots, err := generateDaySlots(center, date, nil)
		require.NoError(t, err)
		assert.Len(t, slots, 32)
	})

	t.Run("partial trailing slot dropped", func(t *testing.T) {
		center := testCenter("CTR-1")
		center.CenterEndTime = "09:40"
		center.LunchStartTime = ""
		center.LunchEndTime = ""

		slots, err := generateDaySlots(center, date, nil)
		require.NoError(t, err)
		// 09:00-09:15 и 09:15-09:30; хвост 09:30-09:45 выходит за закрытие
		assert.Len(t, slots, 2)
	})

	t.Run("invalid center config", func(t *testing.T) {
		center := testCenter("CTR-1")
		center.PerKioskProcessing = 0

		_, err := generateDaySlots(center, date, nil)
		assert.ErrorIs(t, err, ErrInvalidCenterConfig)
	})
}

func TestExecuteSyncsAllCenters(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	masterdata := &fakeMasterdata{
		listCentersFn: func(ctx context.Context) ([]*domain.RegistrationCenter, error) {
			return []*domain.RegistrationCenter{testCenter("CTR-1"), testCenter("CTR-2")}, nil
		},
	}

	uc := NewUseCase(repo, masterdata, 2, 4, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.MsgMasterDataSynced, resp.Message)
	assert.Equal(t, 2, resp.SyncedCenters)
	assert.Empty(t, resp.FailedCenters)
	// 2 центра, окно в 3 даты, 28 слотов на дату
	assert.Equal(t, 2*3*28, repo.count())
}

func TestExecuteCenterFailureIsolation(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		upsertFn: func(ctx context.Context, slot *domain.AvailabilitySlot) error {
			if slot.CenterID == "CTR-BAD" {
				return errors.New("constraint violation")
			}
			return nil
		},
	}
	masterdata := &fakeMasterdata{
		listCentersFn: func(ctx context.Context) ([]*domain.RegistrationCenter, error) {
			return []*domain.RegistrationCenter{
				testCenter("CTR-1"),
				testCenter("CTR-BAD"),
				testCenter("CTR-3"),
			}, nil
		},
	}

	uc := NewUseCase(repo, masterdata, 1, 2, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SyncedCenters)
	require.Len(t, resp.FailedCenters, 1)
	assert.Equal(t, "CTR-BAD", resp.FailedCenters[0].CenterID)
	assert.Contains(t, resp.FailedCenters[0].Reason, "constraint violation")
}

func TestExecuteHolidayFailureIsolation(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	masterdata := &fakeMasterdata{
		listCentersFn: func(ctx context.Context) ([]*domain.RegistrationCenter, error) {
			return []*domain.RegistrationCenter{testCenter("CTR-1"), testCenter("CTR-2")}, nil
		},
		getHolidaysFn: func(ctx context.Context, centerID string) ([]time.Time, error) {
			if centerID == "CTR-2" {
				return nil, errors.New("masterdata timeout")
			}
			return nil, nil
		},
	}

	uc := NewUseCase(repo, masterdata, 0, 1, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.SyncedCenters)
	require.Len(t, resp.FailedCenters, 1)
	assert.Equal(t, "CTR-2", resp.FailedCenters[0].CenterID)
}

func TestExecuteMasterdataUnavailable(t *testing.T) {
	masterdata := &fakeMasterdata{
		listCentersFn: func(ctx context.Context) ([]*domain.RegistrationCenter, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewUseCase(&fakeAvailabilityRepo{}, masterdata, 30, 4, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrMasterdataUnavailable)
}
