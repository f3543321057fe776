package statusservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/civicreg/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса статусов заявок на пре-регистрацию
// Статус заявителя живет во внешнем сервисе: бронирование обязано держать его
// в согласии с локальной записью о бронировании
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса статусов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStatus возвращает текущий статус заявителя
func (c *Client) GetStatus(ctx context.Context, preRegID string) (domain.BookingStatus, error) {
	url := fmt.Sprintf("%s/internal/applications/%s/status", c.baseURL, preRegID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return "", ErrPreRegistrationNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	parsed, err := parseStatusCode(status.StatusCode)
	if err != nil {
		return "", err
	}

	return parsed, nil
}

// UpdateStatus устанавливает статус заявителя
// Ошибка не проглатывается: вызывающий код решает, что компенсировать
func (c *Client) UpdateStatus(ctx context.Context, preRegID string, status domain.BookingStatus) error {
	url := fmt.Sprintf("%s/internal/applications/%s/status", c.baseURL, preRegID)

	payload, err := json.Marshal(UpdateStatusRequest{
		PreRegistrationID: preRegID,
		StatusCode:        string(status),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrPreRegistrationNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

func parseStatusCode(code string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(code) {
	case domain.StatusPendingAppointment, domain.StatusBooked, domain.StatusCanceled, domain.StatusExpired:
		return domain.BookingStatus(code), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, code)
	}
}
