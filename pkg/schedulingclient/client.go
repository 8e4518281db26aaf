package schedulingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Client HTTP клиент сервиса расписания
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
// token нужен только для административных методов
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitAvailabilityRequest отправляет запрос на немедленный звонок
func (c *Client) SubmitAvailabilityRequest(ctx context.Context, form ContactForm) (*AvailabilityRequest, error) {
	var out AvailabilityRequest
	if err := c.do(ctx, http.MethodPost, "/api/v1/availability-requests", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAvailabilityRequest возвращает текущий статус запроса
func (c *Client) GetAvailabilityRequest(ctx context.Context, id uuid.UUID) (*AvailabilityRequest, error) {
	var out AvailabilityRequest
	if err := c.do(ctx, http.MethodGet, "/api/v1/availability-requests/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCalendar загружает административный календарь за [from, to) по календарным датам
func (c *Client) GetCalendar(ctx context.Context, from, to time.Time) (*Calendar, error) {
	query := url.Values{}
	query.Set("from", from.Format(dateLayout))
	query.Set("to", to.Format(dateLayout))

	var out Calendar
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/calendar?"+query.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlockedSlot блокирует интервал [start, end)
func (c *Client) CreateBlockedSlot(ctx context.Context, start, end time.Time, reason string) (*BlockedSlot, error) {
	body := createBlockedSlotRequest{StartTime: start, EndTime: end, Reason: reason}

	var out BlockedSlot
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/blocked-slots", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBlockedSlot снимает блокировку
func (c *Client) DeleteBlockedSlot(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/admin/blocked-slots/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, errorMessage(resp.Body))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, errorMessage(resp.Body))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, errorMessage(resp.Body))
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, errorMessage(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(resp.Body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return string(raw)
}
