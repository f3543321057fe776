package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/civicreg/booking-service/internal/api/handlers"
	getAvailability "github.com/civicreg/booking-service/internal/usecase/get_availability"
)

const (
	msgMissingCenterID        = "ID регистрационного центра обязателен"
	msgAvailabilityNotFound   = "календарь доступности для центра не найден"
	msgInvalidAvailabilityReq = "некорректный запрос календаря доступности"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/availability/{centerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	centerID := vars["centerId"]
	if centerID == "" {
		h.logger.Warn("GET /appointments/availability/{centerId} - Missing center ID")
		handlers.RespondBadRequest(w, msgMissingCenterID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{CenterID: centerID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /appointments/availability/{centerId} - Invalid input: center_id=%s", centerID)
			handlers.RespondBadRequest(w, msgInvalidAvailabilityReq)

		case errors.Is(err, getAvailability.ErrAvailabilityNotFound):
			h.logger.Warn("GET /appointments/availability/{centerId} - No availability: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgAvailabilityNotFound)

		default:
			h.logger.Error("GET /appointments/availability/{centerId} - Failed to get availability: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /appointments/availability/{centerId} - Availability retrieved: center_id=%s, dates_count=%d",
		centerID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
