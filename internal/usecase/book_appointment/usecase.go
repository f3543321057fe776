package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/civicreg/booking-service/internal/domain"
	availabilityRepo "github.com/civicreg/booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/civicreg/booking-service/internal/infra/storage/booking"
)

// UseCase use case бронирования: батч-оркестратор поверх жизненного цикла
// одного бронирования
//
// Каждый элемент батча обрабатывается в собственной единице работы:
// сбой элемента i не откатывает уже закоммиченные элементы 0..i-1
// и не мешает обработке элементов i+1..n-1
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	statusClient     StatusClient
	guard            SlotGuard
	txManager        TransactionManager
	canceler         Canceler
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	statusClient StatusClient,
	guard SlotGuard,
	txManager TransactionManager,
	canceler Canceler,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		statusClient:     statusClient,
		guard:            guard,
		txManager:        txManager,
		canceler:         canceler,
		logger:           logger,
	}
}

// Execute обрабатывает батч запросов на бронирование
// Возвращает по одному результату на каждый элемент; порядок сохраняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Requests) == 0 {
		return nil, fmt.Errorf("%w: empty booking request", ErrBookingDataNotFound)
	}

	uc.logger.Info("BookAppointments: processing batch of %d requests", len(req.Requests))

	results := make([]BookingResult, 0, len(req.Requests))
	for i := range req.Requests {
		results = append(results, uc.processRequest(ctx, &req.Requests[i]))
	}

	return &Response{Results: results}, nil
}

// processRequest обрабатывает один элемент батча до конца:
// успех или итоговый статус ошибки, без влияния на соседей
func (uc *UseCase) processRequest(ctx context.Context, req *BookingRequest) BookingResult {
	// 1. Валидация обязательных полей до любых изменений
	if err := validateBookingRequest(req); err != nil {
		uc.logger.Warn("BookAppointments: validation failed for preReg=%s: %v", req.PreRegistrationID, err)
		return failureResult(req.PreRegistrationID, err)
	}

	// 2. Статус заявителя: новое бронирование разрешено из
	// Pending_Appointment или Expired; rebook дополнительно допускается
	// из Booked, пока заявитель держит старую запись
	status, err := uc.statusClient.GetStatus(ctx, req.PreRegistrationID)
	if err != nil {
		uc.logger.Error("BookAppointments: failed to get status for preReg=%s: %v", req.PreRegistrationID, err)
		return failureResult(req.PreRegistrationID, fmt.Errorf("%w: get status: %v", ErrInfrastructure, err))
	}

	if !statusAllowsRequest(req, status) {
		uc.logger.Warn("BookAppointments: preReg=%s not eligible, status=%s", req.PreRegistrationID, status)
		return BookingResult{
			PreRegistrationID: req.PreRegistrationID,
			Status:            status,
			Message:           fmt.Sprintf("Appointment can't be done for %s status code", status),
		}
	}

	// 3. Rebook: отмена старого слота, затем бронирование нового
	if isRebook(req) {
		// Одинаковые старый и новый слоты считаются дубликатом и отклоняются без изменений
		if req.OldBooking.Equal(req.NewBooking) {
			uc.logger.Warn("BookAppointments: duplicate rebook for preReg=%s", req.PreRegistrationID)
			return failureResult(req.PreRegistrationID, ErrDuplicateRebook)
		}

		if err := uc.canceler.Cancel(ctx, req.PreRegistrationID, *req.OldBooking); err != nil {
			uc.logger.Error("BookAppointments: rebook cancel failed for preReg=%s: %v", req.PreRegistrationID, err)
			return failureResult(req.PreRegistrationID, err)
		}
		// Старый слот возвращён; при сбое нового бронирования заявитель
		// остаётся без активной записи в статусе Pending_Appointment,
		// вместимость старого слота не придерживается
	}

	// 4. Бронирование нового слота
	if err := uc.book(ctx, req.PreRegistrationID, *req.NewBooking); err != nil {
		uc.logger.Error("BookAppointments: book failed for preReg=%s: %v", req.PreRegistrationID, err)
		return failureResult(req.PreRegistrationID, err)
	}

	uc.logger.Info("BookAppointments: preReg=%s booked at %s", req.PreRegistrationID, req.NewBooking.SlotKey())
	return BookingResult{
		PreRegistrationID: req.PreRegistrationID,
		Status:            domain.StatusBooked,
		Message:           domain.MsgAppointmentBooked,
		Booked:            true,
	}
}

// book выполняет жизненный цикл одного бронирования:
// резерв киоска → запись брони → синхронизация внешнего статуса
//
// Резерв и запись коммитятся одной сериализуемой транзакцией, так что
// сбой записи автоматически откатывает резерв. Сбой синхронизации статуса
// после коммита компенсируется явно: бронь помечается отменённой и киоск
// возвращается до того, как ошибка уйдёт наружу
func (uc *UseCase) book(ctx context.Context, preRegID string, slot domain.SlotDescriptor) error {
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Критическая секция покрывает только read-check-write счётчика
		if err := uc.guard.WithLock(slot.SlotKey(), func() error {
			return uc.availabilityRepo.Reserve(txCtx, slot)
		}); err != nil {
			return err
		}

		booking := &domain.Booking{
			PreRegistrationID: preRegID,
			CenterID:          slot.CenterID,
			Date:              slot.Date,
			FromTime:          slot.FromTime,
			ToTime:            slot.ToTime,
			Status:            domain.StatusBooked,
		}

		result, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		created = result
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, availabilityRepo.ErrCapacityExhausted):
			return ErrAppointmentCannotBeBooked
		case errors.Is(err, availabilityRepo.ErrSlotNotFound):
			return ErrAvailabilityNotFound
		case errors.Is(err, bookingRepo.ErrDuplicateActiveBooking):
			return ErrSlotAlreadyBooked
		default:
			// Транзакция откатилась, резерв не сохранился
			return fmt.Errorf("%w: %v", ErrAppointmentBookingFailed, err)
		}
	}

	// Синхронизация внешнего статуса заявителя
	if err := uc.statusClient.UpdateStatus(ctx, preRegID, domain.StatusBooked); err != nil {
		uc.compensateBooking(ctx, created, slot)
		return fmt.Errorf("%w: status sync: %v", ErrAppointmentBookingFailed, err)
	}

	return nil
}

// compensateBooking откатывает закоммиченное бронирование после сбоя
// синхронизации статуса: бронь помечается отменённой, киоск возвращается
// Сбои компенсации логируются, но исходную ошибку не заслоняют
func (uc *UseCase) compensateBooking(ctx context.Context, booking *domain.Booking, slot domain.SlotDescriptor) {
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCanceled); err != nil {
			return err
		}
		return uc.guard.WithLock(slot.SlotKey(), func() error {
			return uc.availabilityRepo.Release(txCtx, slot)
		})
	})
	if err != nil {
		uc.logger.Error("BookAppointments: compensation failed for booking id=%d slot %s: %v",
			booking.ID, slot.SlotKey(), err)
	}
}

// failureResult строит результат элемента из ошибки
func failureResult(preRegID string, err error) BookingResult {
	return BookingResult{
		PreRegistrationID: preRegID,
		Message:           err.Error(),
	}
}
