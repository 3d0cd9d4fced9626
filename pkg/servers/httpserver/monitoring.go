package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	timingMetrics metrics.Histogram = kitprometheus.NewHistogramFrom(prometheus.HistogramOpts{
		Name:    "request_duration_seconds",
		Help:    "timing a request in gateway by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	statusCodeMetrics metrics.Counter = kitprometheus.NewCounterFrom(prometheus.CounterOpts{
		Name: "requests_total",
		Help: "requests served by gateway by route and status code",
	}, []string{"route", "code"})
)

// MiddleMetrics время выполнения и коды ответов по маршрутам
func (h *httpserver) MiddleMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := recorder(w)

		next.ServeHTTP(rec, r)

		name := routeName(r)
		h.monitoringTiming(start, name)
		h.monitoringStatusCode(name, rec.Status())
	})
}

// monitoringTiming собирает информацию о времени выполнения запроса
func (*httpserver) monitoringTiming(start time.Time, route string) {
	timingMetrics.
		With("route", route).
		Observe(time.Since(start).Seconds())
}

// monitoringStatusCode собирает информацию о статус кодах ответов на запрос
func (*httpserver) monitoringStatusCode(route string, statusCode int) {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	statusCodeMetrics.
		With("route", route, "code", strconv.Itoa(statusCode)).
		Add(1)
}
