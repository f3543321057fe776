package masterdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/civicreg/booking-service/internal/domain"
	"github.com/civicreg/booking-service/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент master-data сервиса
// Отдает центры регистрации и их праздничные дни для генерации календаря
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента master-data сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListCenters возвращает все центры регистрации
func (c *Client) ListCenters(ctx context.Context) ([]*domain.RegistrationCenter, error) {
	url := fmt.Sprintf("%s/internal/registrationcenters", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var list CentersListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	centers := make([]*domain.RegistrationCenter, 0, len(list.Centers))
	for _, item := range list.Centers {
		center, err := toDomainCenter(item)
		if err != nil {
			return nil, err
		}
		centers = append(centers, center)
	}

	return centers, nil
}

// GetHolidays возвращает праздничные дни центра
func (c *Client) GetHolidays(ctx context.Context, centerID string) ([]time.Time, error) {
	url := fmt.Sprintf("%s/internal/registrationcenters/%s/holidays", c.baseURL, centerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCenterNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var holidaysResp HolidaysResponse
	if err := json.NewDecoder(resp.Body).Decode(&holidaysResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	holidays := make([]time.Time, 0, len(holidaysResp.Holidays))
	for _, raw := range holidaysResp.Holidays {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid holiday date %q: %v", ErrInvalidResponse, raw, err)
		}
		holidays = append(holidays, date)
	}

	return holidays, nil
}

func toDomainCenter(item CenterResponse) (*domain.RegistrationCenter, error) {
	startTime, err := types.NewTimeStringFromString(item.CenterStartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: center %s start time: %v", ErrInvalidResponse, item.ID, err)
	}

	endTime, err := types.NewTimeStringFromString(item.CenterEndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: center %s end time: %v", ErrInvalidResponse, item.ID, err)
	}

	center := &domain.RegistrationCenter{
		ID:                 item.ID,
		Name:               item.Name,
		CenterStartTime:    startTime,
		CenterEndTime:      endTime,
		PerKioskProcessing: item.PerKioskProcessing,
		NumberOfKiosks:     item.NumberOfKiosks,
	}

	// Обеденный перерыв опционален
	if item.LunchStartTime != "" && item.LunchEndTime != "" {
		lunchStart, err := types.NewTimeStringFromString(item.LunchStartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: center %s lunch start time: %v", ErrInvalidResponse, item.ID, err)
		}
		lunchEnd, err := types.NewTimeStringFromString(item.LunchEndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: center %s lunch end time: %v", ErrInvalidResponse, item.ID, err)
		}
		center.LunchStartTime = lunchStart
		center.LunchEndTime = lunchEnd
	}

	return center, nil
}
