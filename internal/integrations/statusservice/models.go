package statusservice

// StatusResponse модель ответа сервиса статусов
type StatusResponse struct {
	PreRegistrationID string `json:"pre_registration_id"`
	StatusCode        string `json:"status_code"`
}

// UpdateStatusRequest модель запроса на обновление статуса
type UpdateStatusRequest struct {
	PreRegistrationID string `json:"pre_registration_id"`
	StatusCode        string `json:"status_code"`
}

// ErrorResponse модель ошибки от сервиса статусов
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
