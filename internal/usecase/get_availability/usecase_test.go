package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicreg/booking-service/internal/domain"
	"github.com/civicreg/booking-service/pkg/types"
)

type fakeAvailabilityRepo struct {
	findDatesFn           func(ctx context.Context, centerID string, from, to time.Time) ([]time.Time, error)
	findByCenterAndDateFn func(ctx context.Context, centerID string, date time.Time) ([]*domain.AvailabilitySlot, error)
}

func (f *fakeAvailabilityRepo) FindDates(ctx context.Context, centerID string, from, to time.Time) ([]time.Time, error) {
	return f.findDatesFn(ctx, centerID, from, to)
}

func (f *fakeAvailabilityRepo) FindByCenterAndDate(ctx context.Context, centerID string, date time.Time) ([]*domain.AvailabilitySlot, error) {
	return f.findByCenterAndDateFn(ctx, centerID, date)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecuteEmptyCenterID(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, 30, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CenterID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteWindowBounds(t *testing.T) {
	now := time.Date(2026, 9, 14, 16, 45, 0, 0, time.UTC)

	var gotFrom, gotTo time.Time
	repo := &fakeAvailabilityRepo{
		findDatesFn: func(ctx context.Context, centerID string, from, to time.Time) ([]time.Time, error) {
			gotFrom, gotTo = from, to
			return nil, nil
		},
	}

	uc := NewUseCase(repo, 30, nopLogger{})
	uc.timeProvider = fixedTime{now: now}

	_, err := uc.Execute(context.Background(), &Request{CenterID: "CTR-1"})
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)

	// Ближайшие два дня закрыты для записи
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), gotTo)
}

func TestExecuteReturnsDatesWithSlots(t *testing.T) {
	date1 := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)

	repo := &fakeAvailabilityRepo{
		findDatesFn: func(ctx context.Context, centerID string, from, to time.Time) ([]time.Time, error) {
			return []time.Time{date1, date2}, nil
		},
		findByCenterAndDateFn: func(ctx context.Context, centerID string, date time.Time) ([]*domain.AvailabilitySlot, error) {
			if date.Equal(date2) {
				// Дата без слотов выпадает из ответа
				return nil, nil
			}
			return []*domain.AvailabilitySlot{
				{
					CenterID:        centerID,
					Date:            date,
					FromTime:        types.TimeString("09:00"),
					ToTime:          types.TimeString("09:15"),
					TotalKiosks:     4,
					AvailableKiosks: 2,
				},
			}, nil
		},
	}

	uc := NewUseCase(repo, 30, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CenterID: "CTR-1"})
	require.NoError(t, err)

	assert.Equal(t, "CTR-1", resp.CenterID)
	require.Len(t, resp.Dates, 1)
	assert.True(t, resp.Dates[0].Date.Equal(date1))
	require.Len(t, resp.Dates[0].Slots, 1)
	assert.Equal(t, 2, resp.Dates[0].Slots[0].AvailableKiosks)
	assert.Equal(t, 4, resp.Dates[0].Slots[0].TotalKiosks)
}

func TestExecuteRepositoryError(t *testing.T) {
	repo := &fakeAvailabilityRepo{
		findDatesFn: func(ctx context.Context, centerID string, from, to time.Time) ([]time.Time, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewUseCase(repo, 30, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CenterID: "CTR-1"})
	assert.ErrorIs(t, err, ErrInternal)
}
