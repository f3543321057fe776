package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/civicreg/booking-service/internal/api/handlers"
	"github.com/civicreg/booking-service/internal/service/appointments"
)

const (
	msgMissingPreRegID = "идентификатор предварительной регистрации обязателен"
	msgBookingNotFound = "активная запись на приём не найдена"
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

// Handle GET /api/v1/appointments/{preRegistrationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	preRegID := vars["preRegistrationId"]
	if preRegID == "" {
		h.logger.Warn("GET /appointments/{preRegistrationId} - Missing pre-registration ID")
		handlers.RespondBadRequest(w, msgMissingPreRegID)
		return
	}

	result, err := h.service.GetAppointmentDetails(r.Context(), preRegID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{preRegistrationId} - Invalid input: pre_registration_id=%s", preRegID)
			handlers.RespondBadRequest(w, msgMissingPreRegID)

		case errors.Is(err, appointments.ErrBookingNotFound):
			h.logger.Warn("GET /appointments/{preRegistrationId} - Booking not found: pre_registration_id=%s", preRegID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /appointments/{preRegistrationId} - Failed to get appointment: pre_registration_id=%s, error=%v",
				preRegID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /appointments/{preRegistrationId} - Appointment retrieved: pre_registration_id=%s, center_id=%s",
		preRegID, result.CenterID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
