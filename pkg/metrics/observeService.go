package metrics

import (
	"time"

	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamTiming metrics.Histogram = kitprometheus.NewSummaryFrom(prometheus.SummaryOpts{
		Name:       "upstream_health_check_timing",
		Help:       "timing a health check request to the upstream",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"target", "healthy"})

	upstreamUp metrics.Gauge = kitprometheus.NewGaugeFrom(prometheus.GaugeOpts{
		Name: "upstream_up",
		Help: "1 if the last health check of the upstream succeeded",
	}, []string{"target"})
)

// ObserveUpstream фиксирует результат и длительность проверки бекенда
func ObserveUpstream(target string, healthy bool, start time.Time) {
	h := "false"
	up := 0.0
	if healthy {
		h = "true"
		up = 1
	}

	upstreamTiming.With("target", target, "healthy", h).Observe(time.Since(start).Seconds())
	upstreamUp.With("target", target).Set(up)
}
