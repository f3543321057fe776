package book_appointments

import (
	"net/http"

	"github.com/civicreg/booking-service/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotDetails = "некорректные данные слота, ожидается дата YYYY-MM-DD и время HH:MM"
	msgEmptyBatch         = "список запросов на бронирование пуст"
)

type Handler struct {
	useCase BookAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/book
// Каждый элемент батча обрабатывается независимо, ошибки одного
// заявителя не прерывают остальных и возвращаются в его результате.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.Requests) == 0 {
		h.logger.Warn("POST /appointments/book - Empty batch")
		handlers.RespondBadRequest(w, msgEmptyBatch)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/book - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotDetails)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("POST /appointments/book - Failed to process batch: items=%d, error=%v",
			len(req.Requests), err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments/book - Batch processed: items=%d, all_booked=%v",
		len(response.Results), response.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
