package book_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicreg/booking-service/internal/domain"
	availabilityRepo "github.com/civicreg/booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/civicreg/booking-service/internal/infra/storage/booking"
	"github.com/civicreg/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	createFn       func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.BookingStatus) error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return f.createFn(ctx, booking)
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return f.updateStatusFn(ctx, id, status)
}

type fakeAvailabilityRepo struct {
	reserveFn func(ctx context.Context, desc domain.SlotDescriptor) error
	releaseFn func(ctx context.Context, desc domain.SlotDescriptor) error
}

func (f *fakeAvailabilityRepo) Reserve(ctx context.Context, desc domain.SlotDescriptor) error {
	return f.reserveFn(ctx, desc)
}

func (f *fakeAvailabilityRepo) Release(ctx context.Context, desc domain.SlotDescriptor) error {
	return f.releaseFn(ctx, desc)
}

type fakeStatusClient struct {
	getStatusFn    func(ctx context.Context, preRegID string) (domain.BookingStatus, error)
	updateStatusFn func(ctx context.Context, preRegID string, status domain.BookingStatus) error
}

func (f *fakeStatusClient) GetStatus(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
	return f.getStatusFn(ctx, preRegID)
}

func (f *fakeStatusClient) UpdateStatus(ctx context.Context, preRegID string, status domain.BookingStatus) error {
	return f.updateStatusFn(ctx, preRegID, status)
}

// passthroughGuard выполняет критическую секцию без реальной блокировки
type passthroughGuard struct{}

func (passthroughGuard) WithLock(key string, fn func() error) error { return fn() }

// passthroughTx выполняет единицу работы на том же контексте
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCanceler struct {
	cancelFn func(ctx context.Context, preRegID string, old domain.SlotDescriptor) error
	calls    int
}

func (f *fakeCanceler) Cancel(ctx context.Context, preRegID string, old domain.SlotDescriptor) error {
	f.calls++
	if f.cancelFn == nil {
		return nil
	}
	return f.cancelFn(ctx, preRegID, old)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func slot(from, to string) *domain.SlotDescriptor {
	return &domain.SlotDescriptor{
		CenterID: "CTR-1",
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		FromTime: types.TimeString(from),
		ToTime:   types.TimeString(to),
	}
}

func newTestUseCase(
	bookings *fakeBookingRepo,
	availability *fakeAvailabilityRepo,
	status *fakeStatusClient,
	canceler *fakeCanceler,
) *UseCase {
	return NewUseCase(bookings, availability, status, passthroughGuard{}, passthroughTx{}, canceler, nopLogger{})
}

func TestExecuteEmptyBatch(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, &fakeStatusClient{}, &fakeCanceler{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrBookingDataNotFound)

	_, err = uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBookingDataNotFound)
}

func TestExecuteSuccessfulBooking(t *testing.T) {
	var reserved, created bool
	var syncedStatus domain.BookingStatus

	bookings := &fakeBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			created = true
			assert.Equal(t, domain.StatusBooked, booking.Status)
			out := *booking
			out.ID = 42
			return &out, nil
		},
	}
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			reserved = true
			return nil
		},
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusPendingAppointment, nil
		},
		updateStatusFn: func(ctx context.Context, preRegID string, s domain.BookingStatus) error {
			syncedStatus = s
			return nil
		},
	}

	uc := newTestUseCase(bookings, availability, status, &fakeCanceler{})

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", NewBooking: slot("09:00", "09:15")},
	}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.True(t, result.Booked)
	assert.Equal(t, domain.StatusBooked, result.Status)
	assert.Equal(t, domain.MsgAppointmentBooked, result.Message)
	assert.True(t, reserved)
	assert.True(t, created)
	assert.Equal(t, domain.StatusBooked, syncedStatus)
}

func TestExecuteIneligibleStatus(t *testing.T) {
	var reserveCalls int
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			reserveCalls++
			return nil
		},
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusBooked, nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, availability, status, &fakeCanceler{})

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", NewBooking: slot("09:00", "09:15")},
	}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.False(t, result.Booked)
	assert.Equal(t, domain.StatusBooked, result.Status)
	assert.Equal(t, "Appointment can't be done for Booked status code", result.Message)
	assert.Zero(t, reserveCalls)
}

func TestExecuteBatchItemIsolation(t *testing.T) {
	// Элемент 2 невалиден, элементы 1 и 3 должны забронироваться
	bookings := &fakeBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			out := *booking
			out.ID = 1
			return &out, nil
		},
	}
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error { return nil },
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusPendingAppointment, nil
		},
		updateStatusFn: func(ctx context.Context, preRegID string, s domain.BookingStatus) error {
			return nil
		},
	}

	uc := newTestUseCase(bookings, availability, status, &fakeCanceler{})

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", NewBooking: slot("09:00", "09:15")},
		{PreRegistrationID: "", NewBooking: slot("09:15", "09:30")},
		{PreRegistrationID: "PR-3", NewBooking: slot("09:30", "09:45")},
	}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.True(t, resp.Results[0].Booked)
	assert.False(t, resp.Results[1].Booked)
	assert.True(t, resp.Results[2].Booked)
	assert.Equal(t, "PR-1", resp.Results[0].PreRegistrationID)
	assert.Equal(t, "PR-3", resp.Results[2].PreRegistrationID)
}

func TestExecuteCapacityExhausted(t *testing.T) {
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			return availabilityRepo.ErrCapacityExhausted
		},
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusPendingAppointment, nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, availability, status, &fakeCanceler{})

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", NewBooking: slot("09:00", "09:15")},
	}})
	require.NoError(t, err)

	result := resp.Results[0]
	assert.False(t, result.Booked)
	assert.Equal(t, ErrAppointmentCannotBeBooked.Error(), result.Message)
}

func TestExecuteSlotNotInCalendar(t *testing.T) {
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			return availabilityRepo.ErrSlotNotFound
		},
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusExpired, nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, availability, status, &fakeCanceler{})

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", NewBooking: slot("09:00", "09:15")},
	}})
	require.NoError(t, err)

	assert.False(t, resp.Results[0].Booked)
	assert.Equal(t, ErrAvailabilityNotFound.Error(), resp.Results[0].Message)
}

func TestExecuteDuplicateActiveBooking(t *testing.T) {
	var released bool
	bookings := &fakeBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			return nil, bookingRepo.ErrDuplicateActiveBooking
		},
	}
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error { return nil },
		releaseFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			released = true
			return nil
		},
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusPendingAppointment, nil
		},
	}

	uc := newTestUseCase(bookings, availability, status, &fakeCanceler{})

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", NewBooking: slot("09:00", "09:15")},
	}})
	require.NoError(t, err)

	assert.False(t, resp.Results[0].Booked)
	assert.Equal(t, ErrSlotAlreadyBooked.Error(), resp.Results[0].Message)
	// Откат транзакции возвращает резерв, явный Release не нужен
	assert.False(t, released)
}

func TestExecuteRebookAllowedFromBookedOnly(t *testing.T) {
	// Rebook проходит проверку статуса из Booked, но не из Canceled
	var reserveCalls int
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			reserveCalls++
			return nil
		},
	}
	canceler := &fakeCanceler{}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusCanceled, nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, availability, status, canceler)

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", OldBooking: slot("09:00", "09:15"), NewBooking: slot("10:00", "10:15")},
	}})
	require.NoError(t, err)

	result := resp.Results[0]
	assert.False(t, result.Booked)
	assert.Equal(t, "Appointment can't be done for Canceled status code", result.Message)
	assert.Zero(t, canceler.calls)
	assert.Zero(t, reserveCalls)
}

func TestExecuteDuplicateRebookRejected(t *testing.T) {
	canceler := &fakeCanceler{}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusBooked, nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, status, canceler)

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", OldBooking: slot("09:00", "09:15"), NewBooking: slot("09:00", "09:15")},
	}})
	require.NoError(t, err)

	assert.False(t, resp.Results[0].Booked)
	assert.Equal(t, ErrDuplicateRebook.Error(), resp.Results[0].Message)
	assert.Zero(t, canceler.calls)
}

func TestExecuteRebookCancelsOldSlotFirst(t *testing.T) {
	var order []string

	canceler := &fakeCanceler{
		cancelFn: func(ctx context.Context, preRegID string, old domain.SlotDescriptor) error {
			order = append(order, "cancel")
			assert.Equal(t, "09:00", old.FromTime.String())
			return nil
		},
	}
	bookings := &fakeBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			order = append(order, "create")
			out := *booking
			out.ID = 7
			return &out, nil
		},
	}
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			order = append(order, "reserve")
			return nil
		},
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			// После отмены старого слота заявитель вернётся в Pending_Appointment,
			// но проверка статуса идёт до отмены, поэтому rebook стартует из Booked
			return domain.StatusBooked, nil
		},
		updateStatusFn: func(ctx context.Context, preRegID string, s domain.BookingStatus) error {
			return nil
		},
	}

	uc := newTestUseCase(bookings, availability, status, canceler)

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", OldBooking: slot("09:00", "09:15"), NewBooking: slot("10:00", "10:15")},
	}})
	require.NoError(t, err)

	assert.True(t, resp.Results[0].Booked)
	assert.Equal(t, []string{"cancel", "reserve", "create"}, order)
}

func TestExecuteRebookNewSlotExhausted(t *testing.T) {
	// Отмена старого слота уже закоммичена; сбой нового бронирования
	// оставляет заявителя без активной записи, отмена не откатывается
	canceler := &fakeCanceler{}
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			return availabilityRepo.ErrCapacityExhausted
		},
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusBooked, nil
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, availability, status, canceler)

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", OldBooking: slot("09:00", "09:15"), NewBooking: slot("10:00", "10:15")},
	}})
	require.NoError(t, err)

	assert.False(t, resp.Results[0].Booked)
	assert.Equal(t, 1, canceler.calls)
	assert.Equal(t, ErrAppointmentCannotBeBooked.Error(), resp.Results[0].Message)
}

func TestExecuteStatusSyncFailureCompensates(t *testing.T) {
	var canceledID int64
	var released bool

	bookings := &fakeBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			out := *booking
			out.ID = 99
			return &out, nil
		},
		updateStatusFn: func(ctx context.Context, id int64, s domain.BookingStatus) error {
			require.Equal(t, domain.StatusCanceled, s)
			canceledID = id
			return nil
		},
	}
	availability := &fakeAvailabilityRepo{
		reserveFn: func(ctx context.Context, desc domain.SlotDescriptor) error { return nil },
		releaseFn: func(ctx context.Context, desc domain.SlotDescriptor) error {
			released = true
			return nil
		},
	}
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return domain.StatusPendingAppointment, nil
		},
		updateStatusFn: func(ctx context.Context, preRegID string, s domain.BookingStatus) error {
			return errors.New("status service down")
		},
	}

	uc := newTestUseCase(bookings, availability, status, &fakeCanceler{})

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", NewBooking: slot("09:00", "09:15")},
	}})
	require.NoError(t, err)

	assert.False(t, resp.Results[0].Booked)
	assert.Equal(t, int64(99), canceledID)
	assert.True(t, released)
}

func TestExecuteGetStatusFailure(t *testing.T) {
	status := &fakeStatusClient{
		getStatusFn: func(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
			return "", errors.New("timeout")
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, status, &fakeCanceler{})

	resp, err := uc.Execute(context.Background(), &Request{Requests: []BookingRequest{
		{PreRegistrationID: "PR-1", NewBooking: slot("09:00", "09:15")},
	}})
	require.NoError(t, err)

	assert.False(t, resp.Results[0].Booked)
	assert.Contains(t, resp.Results[0].Message, ErrInfrastructure.Error())
}
