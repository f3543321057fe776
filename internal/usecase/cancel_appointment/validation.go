package cancel_appointment

import (
	"fmt"
	"strings"
)

// validateRequest проверяет обязательные поля запроса на отмену
// Валидация выполняется до любых изменений состояния
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PreRegistrationID) == "" {
		return fmt.Errorf("%w: preRegistrationId is required", ErrBookingDataNotFound)
	}

	if strings.TrimSpace(req.CenterID) == "" {
		return fmt.Errorf("%w: centerId is required", ErrBookingDataNotFound)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrBookingDataNotFound)
	}

	if req.FromTime.IsZero() || req.ToTime.IsZero() {
		return fmt.Errorf("%w: slot time window is required", ErrBookingDataNotFound)
	}

	if err := req.FromTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid fromTime: %v", ErrBookingDataNotFound, err)
	}

	if err := req.ToTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid toTime: %v", ErrBookingDataNotFound, err)
	}

	if !req.FromTime.IsBefore(req.ToTime) {
		return fmt.Errorf("%w: fromTime must be before toTime", ErrBookingDataNotFound)
	}

	return nil
}
