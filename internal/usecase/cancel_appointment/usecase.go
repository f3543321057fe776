package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/civicreg/booking-service/internal/domain"
	availabilityRepo "github.com/civicreg/booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/civicreg/booking-service/internal/infra/storage/booking"
)

// UseCase use case отмены бронирования
//
// Порядок шагов фиксирован: запись помечается Canceled до синхронизации
// статуса и до возврата киоска. При сбое в середине последовательности слот
// останется недовозвращённым, а не перевозвращённым; устранение такого
// разрыва лежит на внешней сверке, не на этом коде
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	statusClient     StatusClient
	guard            SlotGuard
	txManager        TransactionManager
	idGenerator      IDGenerator
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	statusClient StatusClient,
	guard SlotGuard,
	txManager TransactionManager,
	idGenerator IDGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		statusClient:     statusClient,
		guard:            guard,
		txManager:        txManager,
		idGenerator:      idGenerator,
		logger:           logger,
	}
}

// Execute выполняет отмену бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: preReg=%s, center=%s, date=%s, slot=%s-%s",
		req.PreRegistrationID, req.CenterID, req.Date.Format(domain.DateFormat), req.FromTime, req.ToTime)

	// 1. Валидация обязательных полей до любых изменений
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем статус заявителя во внешнем сервисе
	status, err := uc.statusClient.GetStatus(ctx, req.PreRegistrationID)
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to get status for preReg=%s: %v", req.PreRegistrationID, err)
		return nil, fmt.Errorf("%w: get status: %v", ErrInfrastructure, err)
	}

	if status == domain.StatusCanceled {
		uc.logger.Warn("CancelAppointment: preReg=%s already canceled", req.PreRegistrationID)
		return nil, ErrAppointmentAlreadyCanceled
	}
	if status != domain.StatusBooked {
		uc.logger.Warn("CancelAppointment: preReg=%s status=%s does not allow cancellation",
			req.PreRegistrationID, status)
		return nil, fmt.Errorf("%w: status is %s", ErrAppointmentCannotBeCanceled, status)
	}

	// 3. Проверяем, что строка доступности для слота существует
	slot := req.Slot()
	if _, err := uc.availabilityRepo.FindByWindow(ctx, slot); err != nil {
		if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
			uc.logger.Warn("CancelAppointment: availability not found for slot %s", slot.SlotKey())
			return nil, ErrAvailabilityNotFound
		}
		uc.logger.Error("CancelAppointment: failed to find slot %s: %v", slot.SlotKey(), err)
		return nil, fmt.Errorf("%w: find slot: %v", ErrInfrastructure, err)
	}

	// 4. Находим активное бронирование заявителя
	booking, err := uc.bookingRepo.FindActiveByPreRegID(ctx, req.PreRegistrationID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelAppointment: no active booking for preReg=%s", req.PreRegistrationID)
			return nil, fmt.Errorf("%w: no active booking", ErrAppointmentCannotBeCanceled)
		}
		uc.logger.Error("CancelAppointment: failed to find booking for preReg=%s: %v", req.PreRegistrationID, err)
		return nil, fmt.Errorf("%w: find booking: %v", ErrInfrastructure, err)
	}

	if !booking.CanBeCancelled() {
		uc.logger.Warn("CancelAppointment: booking id=%d status=%s does not allow cancellation",
			booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: booking status is %s", ErrAppointmentCannotBeCanceled, booking.Status)
	}

	// Переданный дескриптор должен указывать на то бронирование, которое отменяем
	if !bookingMatchesSlot(booking, slot) {
		uc.logger.Warn("CancelAppointment: slot mismatch for preReg=%s: have %s, requested %s",
			req.PreRegistrationID, bookingSlot(booking).SlotKey(), slot.SlotKey())
		return nil, fmt.Errorf("%w: booking does not match requested slot", ErrAppointmentCannotBeCanceled)
	}

	// 5. Помечаем бронирование отменённым (собственная единица работы)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCanceled)
	})
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to mark booking id=%d canceled: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: mark canceled: %v", ErrCancelAppointmentFailed, err)
	}

	// 6. Возвращаем статус заявителя в Pending_Appointment
	if err := uc.statusClient.UpdateStatus(ctx, req.PreRegistrationID, domain.StatusPendingAppointment); err != nil {
		uc.logger.Error("CancelAppointment: status sync failed for preReg=%s: %v", req.PreRegistrationID, err)
		return nil, fmt.Errorf("%w: status sync: %v", ErrCancelAppointmentFailed, err)
	}

	// 7. Возвращаем киоск в слот под блокировкой слота
	err = uc.guard.WithLock(slot.SlotKey(), func() error {
		return uc.availabilityRepo.Release(ctx, slot)
	})
	if err != nil {
		uc.logger.Error("CancelAppointment: capacity release failed for slot %s: %v", slot.SlotKey(), err)
		return nil, fmt.Errorf("%w: capacity release: %v", ErrCancelAppointmentFailed, err)
	}

	transactionID := uc.idGenerator.TransactionID()
	uc.logger.Info("CancelAppointment: preReg=%s canceled, transaction=%s", req.PreRegistrationID, transactionID)

	return &Response{
		TransactionID: transactionID,
		Message:       domain.MsgAppointmentCanceled,
	}, nil
}

// Cancel отменяет активное бронирование по дескриптору слота
// Используется батч-оркестратором бронирования как первый шаг rebook
func (uc *UseCase) Cancel(ctx context.Context, preRegID string, old domain.SlotDescriptor) error {
	_, err := uc.Execute(ctx, &Request{
		PreRegistrationID: preRegID,
		CenterID:          old.CenterID,
		Date:              old.Date,
		FromTime:          old.FromTime,
		ToTime:            old.ToTime,
	})
	return err
}

func bookingMatchesSlot(booking *domain.Booking, slot domain.SlotDescriptor) bool {
	have := bookingSlot(booking)
	return have.Equal(&slot)
}

func bookingSlot(booking *domain.Booking) *domain.SlotDescriptor {
	return &domain.SlotDescriptor{
		CenterID: booking.CenterID,
		Date:     booking.Date,
		FromTime: booking.FromTime,
		ToTime:   booking.ToTime,
	}
}

