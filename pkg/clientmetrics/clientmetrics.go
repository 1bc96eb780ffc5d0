package clientmetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/TMP-SearchService/pkg/metrics"
)

// Transport http.RoundTripper, записывающий метрики исходящих запросов
// Оборачивает базовый transport интеграционного клиента
type Transport struct {
	base        http.RoundTripper
	collector   *metrics.Metrics
	integration string
}

// Wrap оборачивает http.Client метриками исходящих запросов
// integration - имя внешнего сервиса в лейблах метрик (например "tutor_directory")
// Если collector == nil, клиент возвращается без изменений
func Wrap(client *http.Client, collector *metrics.Metrics, integration string) *http.Client {
	if collector == nil {
		return client
	}

	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	client.Transport = &Transport{
		base:        base,
		collector:   collector,
		integration: integration,
	}

	return client
}

// RoundTrip выполняет запрос и записывает метрики
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	t.collector.IntegrationRequestDuration.
		WithLabelValues(t.integration, req.Method).
		Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	t.collector.IntegrationRequestsTotal.
		WithLabelValues(t.integration, req.Method, status).
		Inc()

	return resp, err
}
