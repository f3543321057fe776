package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicreg/booking-service/internal/domain"
	bookingRepo "github.com/civicreg/booking-service/internal/infra/storage/booking"
	"github.com/civicreg/booking-service/internal/service/appointments/models"
	"github.com/civicreg/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	findActiveFn       func(ctx context.Context, preRegID string) (*domain.Booking, error)
	findBookedByCenter func(ctx context.Context, centerID string) ([]*domain.Booking, error)
}

func (f *fakeBookingRepo) FindActiveByPreRegID(ctx context.Context, preRegID string) (*domain.Booking, error) {
	return f.findActiveFn(ctx, preRegID)
}

func (f *fakeBookingRepo) FindBookedByCenter(ctx context.Context, centerID string) ([]*domain.Booking, error) {
	return f.findBookedByCenter(ctx, centerID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetAppointmentDetails(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{}, nopLogger{})

		_, err := svc.GetAppointmentDetails(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no active booking", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{
			findActiveFn: func(ctx context.Context, preRegID string) (*domain.Booking, error) {
				return nil, bookingRepo.ErrBookingNotFound
			},
		}, nopLogger{})

		_, err := svc.GetAppointmentDetails(context.Background(), "PR-1")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{
			findActiveFn: func(ctx context.Context, preRegID string) (*domain.Booking, error) {
				return nil, errors.New("connection refused")
			},
		}, nopLogger{})

		_, err := svc.GetAppointmentDetails(context.Background(), "PR-1")
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("active booking snapshot", func(t *testing.T) {
		updatedAt := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
		svc := NewService(&fakeBookingRepo{
			findActiveFn: func(ctx context.Context, preRegID string) (*domain.Booking, error) {
				return &domain.Booking{
					PreRegistrationID: preRegID,
					CenterID:          "CTR-1",
					Date:              time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
					FromTime:          types.TimeString("09:00"),
					ToTime:            types.TimeString("09:15"),
					Status:            domain.StatusBooked,
					UpdatedAt:         updatedAt,
				}, nil
			},
		}, nopLogger{})

		resp, err := svc.GetAppointmentDetails(context.Background(), "PR-1")
		require.NoError(t, err)

		assert.Equal(t, "PR-1", resp.PreRegistrationID)
		assert.Equal(t, "CTR-1", resp.CenterID)
		assert.Equal(t, "09:00", resp.FromTime)
		assert.Equal(t, "09:15", resp.ToTime)
		assert.Equal(t, string(domain.StatusBooked), resp.Status)
		assert.Equal(t, updatedAt, resp.LastUpdated)
	})
}

func TestGetBookedIDsForCenter(t *testing.T) {
	centerBookings := []*domain.Booking{
		{PreRegistrationID: "PR-2", CenterID: "CTR-1", Status: domain.StatusBooked},
		{PreRegistrationID: "PR-5", CenterID: "CTR-1", Status: domain.StatusBooked},
		{PreRegistrationID: "PR-9", CenterID: "CTR-1", Status: domain.StatusBooked},
	}

	repo := &fakeBookingRepo{
		findBookedByCenter: func(ctx context.Context, centerID string) ([]*domain.Booking, error) {
			return centerBookings, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	t.Run("missing center id", func(t *testing.T) {
		_, err := svc.GetBookedIDsForCenter(context.Background(), &models.BookedIDsRequest{
			PreRegistrationIDs: []string{"PR-1"},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("intersection preserves candidate order", func(t *testing.T) {
		resp, err := svc.GetBookedIDsForCenter(context.Background(), &models.BookedIDsRequest{
			CenterID:           "CTR-1",
			PreRegistrationIDs: []string{"PR-9", "PR-1", "PR-2", "PR-7"},
		})
		require.NoError(t, err)

		assert.Equal(t, "CTR-1", resp.CenterID)
		assert.Equal(t, []string{"PR-9", "PR-2"}, resp.PreRegistrationIDs)
	})

	t.Run("inactive bookings excluded", func(t *testing.T) {
		repo := &fakeBookingRepo{
			findBookedByCenter: func(ctx context.Context, centerID string) ([]*domain.Booking, error) {
				return []*domain.Booking{
					{PreRegistrationID: "PR-2", CenterID: "CTR-1", Status: domain.StatusBooked},
					{PreRegistrationID: "PR-5", CenterID: "CTR-1", Status: domain.StatusCanceled},
				}, nil
			},
		}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.GetBookedIDsForCenter(context.Background(), &models.BookedIDsRequest{
			CenterID:           "CTR-1",
			PreRegistrationIDs: []string{"PR-2", "PR-5"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"PR-2"}, resp.PreRegistrationIDs)
	})

	t.Run("no candidates matched", func(t *testing.T) {
		resp, err := svc.GetBookedIDsForCenter(context.Background(), &models.BookedIDsRequest{
			CenterID:           "CTR-1",
			PreRegistrationIDs: []string{"PR-100"},
		})
		require.NoError(t, err)
		assert.Empty(t, resp.PreRegistrationIDs)
	})
}
