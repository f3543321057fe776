package get_booked_ids

import (
	"errors"
	"net/http"

	"github.com/civicreg/booking-service/internal/api/handlers"
	"github.com/civicreg/booking-service/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCenterID    = "ID регистрационного центра обязателен"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/booked-ids
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookedIDsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/booked-ids - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GetBookedIDsForCenter(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /appointments/booked-ids - Invalid input: center_id=%s", req.RegistrationCenterID)
			handlers.RespondBadRequest(w, msgMissingCenterID)

		default:
			h.logger.Error("POST /appointments/booked-ids - Failed to get booked ids: center_id=%s, error=%v",
				req.RegistrationCenterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("POST /appointments/booked-ids - Booked ids retrieved: center_id=%s, candidates=%d, matched=%d",
		req.RegistrationCenterID, len(req.PreRegistrationIDs), len(result.PreRegistrationIDs))
	handlers.RespondJSON(w, http.StatusOK, response)
}
