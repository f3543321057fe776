package book_appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicreg/booking-service/internal/domain"
	bookAppointment "github.com/civicreg/booking-service/internal/usecase/book_appointment"
)

type fakeUseCase struct {
	executeFn func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	return f.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postJSON(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/book", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandleInvalidBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := postJSON(t, handler, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEmptyBatch(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := postJSON(t, handler, `{"requests": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidSlotDate(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := postJSON(t, handler, `{"requests": [{
		"preRegistrationId": "PR-1",
		"newBookingDetails": {
			"registrationCenterId": "CTR-1",
			"appointmentDate": "15.09.2026",
			"timeSlotFrom": "09:00",
			"timeSlotTo": "09:15"
		}
	}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBatchResults(t *testing.T) {
	useCase := &fakeUseCase{
		executeFn: func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
			require.Len(t, req.Requests, 2)
			assert.Equal(t, "PR-1", req.Requests[0].PreRegistrationID)
			assert.NotNil(t, req.Requests[1].OldBooking)

			return &bookAppointment.Response{Results: []bookAppointment.BookingResult{
				{
					PreRegistrationID: "PR-1",
					Status:            domain.StatusBooked,
					Message:           domain.MsgAppointmentBooked,
					Booked:            true,
				},
				{
					PreRegistrationID: "PR-2",
					Status:            domain.StatusBooked,
					Message:           "Appointment can't be done for Booked status code",
				},
			}}, nil
		},
	}
	handler := NewHandler(useCase, nopLogger{})

	rec := postJSON(t, handler, `{"requests": [
		{
			"preRegistrationId": "PR-1",
			"newBookingDetails": {
				"registrationCenterId": "CTR-1",
				"appointmentDate": "2026-09-15",
				"timeSlotFrom": "09:00",
				"timeSlotTo": "09:15"
			}
		},
		{
			"preRegistrationId": "PR-2",
			"oldBookingDetails": {
				"registrationCenterId": "CTR-1",
				"appointmentDate": "2026-09-15",
				"timeSlotFrom": "09:00",
				"timeSlotTo": "09:15"
			},
			"newBookingDetails": {
				"registrationCenterId": "CTR-1",
				"appointmentDate": "2026-09-16",
				"timeSlotFrom": "10:00",
				"timeSlotTo": "10:15"
			}
		}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookAppointmentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Общий флаг false, раз второй элемент не забронирован
	assert.False(t, resp.Status)
	require.Len(t, resp.Results, 2)
	assert.True(t, resp.Results[0].Booked)
	assert.Equal(t, domain.MsgAppointmentBooked, resp.Results[0].BookingMessage)
	assert.False(t, resp.Results[1].Booked)
}
