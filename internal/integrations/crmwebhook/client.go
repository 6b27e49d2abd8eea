package crmwebhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// SinkName имя приёмника в метриках и логах
const SinkName = "crm_webhook"

// maxResponseBody ограничение на размер ответа CRM
const maxResponseBody = 1 << 20

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент входящего вебхука CRM
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CRM
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) Name() string {
	return SinkName
}

// SendBooking отправляет подтверждённую запись в CRM. Любой ответ кроме 2xx считается ошибкой
func (c *Client) SendBooking(ctx context.Context, payload *domain.DeliveryPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	result, err := c.Forward(ctx, body)
	if err != nil {
		return err
	}

	if !result.OK() {
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, result.StatusCode, result.Body)
	}

	c.log.Info("CRM accepted booking id=%s, status=%d", payload.Booking.ID, result.StatusCode)
	return nil
}

// Forward пересылает тело запроса в CRM без изменений и возвращает статус и тело ответа
func (c *Client) Forward(ctx context.Context, body []byte) (*ForwardResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	return &ForwardResult{
		StatusCode: resp.StatusCode,
		Body:       string(data),
	}, nil
}
