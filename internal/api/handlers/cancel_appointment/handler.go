package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/civicreg/booking-service/internal/api/handlers"
	cancelAppointment "github.com/civicreg/booking-service/internal/usecase/cancel_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotDetails = "некорректные данные слота, ожидается дата YYYY-MM-DD и время HH:MM"
	msgMissingFields      = "отсутствуют обязательные поля запроса"
	msgSlotNotFound       = "временной слот не найден в календаре центра"
	msgAlreadyCanceled    = "запись уже отменена"
	msgCannotBeCanceled   = "запись не может быть отменена в текущем статусе"
	msgCancelFailed       = "не удалось отменить запись"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/cancel - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotDetails)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrBookingDataNotFound):
			h.logger.Warn("POST /appointments/cancel - Missing required fields: pre_registration_id=%s", req.PreRegistrationID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, cancelAppointment.ErrAvailabilityNotFound):
			h.logger.Warn("POST /appointments/cancel - Slot not found: center_id=%s, date=%s", req.RegistrationCenterID, req.AppointmentDate)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, cancelAppointment.ErrAppointmentAlreadyCanceled):
			h.logger.Warn("POST /appointments/cancel - Already canceled: pre_registration_id=%s", req.PreRegistrationID)
			handlers.RespondBadRequest(w, msgAlreadyCanceled)

		case errors.Is(err, cancelAppointment.ErrAppointmentCannotBeCanceled):
			h.logger.Warn("POST /appointments/cancel - Cannot be canceled: pre_registration_id=%s", req.PreRegistrationID)
			handlers.RespondBadRequest(w, msgCannotBeCanceled)

		case errors.Is(err, cancelAppointment.ErrCancelAppointmentFailed):
			h.logger.Error("POST /appointments/cancel - Cancel failed: pre_registration_id=%s, error=%v",
				req.PreRegistrationID, err)
			handlers.RespondError(w, http.StatusConflict, msgCancelFailed)

		default:
			h.logger.Error("POST /appointments/cancel - Failed to cancel appointment: pre_registration_id=%s, error=%v",
				req.PreRegistrationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments/cancel - Appointment canceled: pre_registration_id=%s, transaction_id=%s",
		req.PreRegistrationID, result.TransactionID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
