package sync_availability

import (
	"errors"
	"net/http"

	"github.com/civicreg/booking-service/internal/api/handlers"
	syncAvailability "github.com/civicreg/booking-service/internal/usecase/sync_availability"
)

const (
	msgMasterdataUnavailable = "сервис справочных данных недоступен"
)

type Handler struct {
	useCase SyncAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SyncAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, syncAvailability.ErrMasterdataUnavailable):
			h.logger.Error("POST /appointments/sync - Masterdata unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgMasterdataUnavailable)

		default:
			h.logger.Error("POST /appointments/sync - Failed to sync availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments/sync - Availability synced: synced=%d, failed=%d",
		result.SyncedCenters, len(result.FailedCenters))
	handlers.RespondJSON(w, http.StatusOK, response)
}
