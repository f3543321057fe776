package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/civicreg/booking-service/internal/infra/storage/booking"
	"github.com/civicreg/booking-service/internal/service/appointments/models"
)

// Service read-сторона бронирований: снимки для заявителей и центров
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetAppointmentDetails возвращает снимок активного бронирования заявителя
func (s *Service) GetAppointmentDetails(ctx context.Context, preRegID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetAppointmentDetails: preReg=%s", preRegID)

	if strings.TrimSpace(preRegID) == "" {
		return nil, fmt.Errorf("%w: preRegistrationId is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.FindActiveByPreRegID(ctx, preRegID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetAppointmentDetails: no active booking for preReg=%s", preRegID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetAppointmentDetails: repository error for preReg=%s: %v", preRegID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetBookedIDsForCenter возвращает подмножество кандидатов, у которых есть
// активное бронирование в указанном центре
func (s *Service) GetBookedIDsForCenter(ctx context.Context, req *models.BookedIDsRequest) (*models.BookedIDsResponse, error) {
	s.logger.Info("GetBookedIDsForCenter: center=%s, candidates=%d", req.CenterID, len(req.PreRegistrationIDs))

	if strings.TrimSpace(req.CenterID) == "" {
		return nil, fmt.Errorf("%w: centerId is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.FindBookedByCenter(ctx, strings.TrimSpace(req.CenterID))
	if err != nil {
		s.logger.Error("GetBookedIDsForCenter: repository error for center=%s: %v", req.CenterID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		booked[b.PreRegistrationID] = struct{}{}
	}

	// Сохраняем порядок кандидатов из запроса
	matched := make([]string, 0, len(req.PreRegistrationIDs))
	for _, id := range req.PreRegistrationIDs {
		if _, ok := booked[id]; ok {
			matched = append(matched, id)
		}
	}

	s.logger.Info("GetBookedIDsForCenter: center=%s, matched=%d", req.CenterID, len(matched))

	return &models.BookedIDsResponse{
		CenterID:           req.CenterID,
		PreRegistrationIDs: matched,
	}, nil
}
