package get_booked_ids

import (
	"github.com/civicreg/booking-service/internal/service/appointments/models"
)

// BookedIDsRequest HTTP модель запроса пересечения кандидатов
type BookedIDsRequest struct {
	RegistrationCenterID string   `json:"registrationCenterId"`
	PreRegistrationIDs   []string `json:"preRegistrationIds"`
}

// BookedIDsResponse HTTP модель ответа
type BookedIDsResponse struct {
	RegistrationCenterID string   `json:"registrationCenterId"`
	PreRegistrationIDs   []string `json:"preRegistrationIds"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BookedIDsRequest) ToServiceRequest() *models.BookedIDsRequest {
	return &models.BookedIDsRequest{
		CenterID:           r.RegistrationCenterID,
		PreRegistrationIDs: r.PreRegistrationIDs,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookedIDsResponse) *BookedIDsResponse {
	return &BookedIDsResponse{
		RegistrationCenterID: resp.CenterID,
		PreRegistrationIDs:   resp.PreRegistrationIDs,
	}
}
