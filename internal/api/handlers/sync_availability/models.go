package sync_availability

import (
	syncAvailability "github.com/civicreg/booking-service/internal/usecase/sync_availability"
)

// SyncAvailabilityResponse HTTP модель результата синхронизации
type SyncAvailabilityResponse struct {
	Message       string          `json:"message"`
	SyncedCenters int             `json:"syncedCenters"`
	FailedCenters []CenterFailure `json:"failedCenters,omitempty"`
}

// CenterFailure отказ синхронизации одного центра
type CenterFailure struct {
	RegistrationCenterID string `json:"registrationCenterId"`
	Reason               string `json:"reason"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncAvailability.Response) *SyncAvailabilityResponse {
	failed := make([]CenterFailure, 0, len(resp.FailedCenters))
	for _, f := range resp.FailedCenters {
		failed = append(failed, CenterFailure{
			RegistrationCenterID: f.CenterID,
			Reason:               f.Reason,
		})
	}

	return &SyncAvailabilityResponse{
		Message:       resp.Message,
		SyncedCenters: resp.SyncedCenters,
		FailedCenters: failed,
	}
}
