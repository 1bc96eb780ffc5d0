package scheduleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/TMP-SearchService/internal/domain"
	"github.com/m04kA/TMP-SearchService/pkg/clientmetrics"
	"github.com/m04kA/TMP-SearchService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ScheduleService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ScheduleService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// EnableMetrics оборачивает транспорт клиента метриками исходящих запросов
func (c *Client) EnableMetrics(collector *metrics.Metrics) {
	c.httpClient = clientmetrics.Wrap(c.httpClient, collector, "schedule_service")
}

// FetchWeekSchedule получает расписание репетитора на неделю с weekStart
// Возвращает не более 7 дней; гранулярность источника нормализуется
// в каноническую сетку на границе
func (c *Client) FetchWeekSchedule(ctx context.Context, tutorID int64, weekStart time.Time) (*domain.ScheduleRecord, error) {
	url := fmt.Sprintf("%s/internal/tutors/%d/schedule?weekStart=%s",
		c.baseURL, tutorID, weekStart.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrTutorNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var week WeekScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&week); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	record, err := week.ToDomain(weekStart)
	if err != nil {
		return nil, err
	}

	if len(record.Days) > domain.DaysPerWeek {
		return nil, fmt.Errorf("%w: got %d days for one week", ErrInvalidResponse, len(record.Days))
	}

	return record, nil
}
