package tutordirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
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

// Client клиент для работы с TutorDirectory
// Серверу делегируются фильтры по цене, языку и поисковой строке;
// фильтрация по дням/блокам выполняется локально поверх выдачи
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента TutorDirectory
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
	c.httpClient = clientmetrics.Wrap(c.httpClient, collector, "tutor_directory")
}

// FetchTutorPage получает одну страницу выдачи репетиторов
// Пагинация и серверные фильтры передаются query-параметрами
func (c *Client) FetchTutorPage(ctx context.Context, query domain.PageQuery) (*domain.TutorPage, error) {
	reqURL, err := c.buildPageURL(query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request url: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
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
	case http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var page TutorPageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return page.ToDomain(), nil
}

// buildPageURL собирает URL страницы выдачи с серверными фильтрами
func (c *Client) buildPageURL(query domain.PageQuery) (string, error) {
	base, err := url.Parse(c.baseURL + "/internal/tutors")
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("pageSize", strconv.Itoa(query.PageSize))

	// Ценовой фильтр не передаем, если он выключен
	if !query.Filters.Price.IsUnconstrained() {
		params.Set("priceMin", strconv.FormatFloat(query.Filters.Price.Min, 'f', -1, 64))
		params.Set("priceMax", strconv.FormatFloat(query.Filters.Price.Max, 'f', -1, 64))
	}

	if query.Filters.PrimaryLanguage != nil {
		params.Set("language", *query.Filters.PrimaryLanguage)
	}

	if query.Filters.SearchTerm != nil {
		params.Set("search", *query.Filters.SearchTerm)
	}

	base.RawQuery = params.Encode()
	return base.String(), nil
}
