package lib

import (
	"runtime"
	"strings"
	"sync"

	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	service_name metrics.Gauge = kitprometheus.NewGaugeFrom(prometheus.GaugeOpts{
		Name: "service_name",
	}, []string{"value"})

	service_version metrics.Gauge = kitprometheus.NewGaugeFrom(prometheus.GaugeOpts{
		Name: "service_version",
	}, []string{"value"})

	service_status metrics.Gauge = kitprometheus.NewGaugeFrom(prometheus.GaugeOpts{
		Name: "service_status",
	}, []string{"value"})

	service_basename metrics.Gauge = kitprometheus.NewGaugeFrom(prometheus.GaugeOpts{
		Name: "service_basename",
	}, []string{"value"})

	service_proxy_target metrics.Gauge = kitprometheus.NewGaugeFrom(prometheus.GaugeOpts{
		Name: "service_proxy_target",
	}, []string{"value"})

	service_port_http metrics.Gauge = kitprometheus.NewGaugeFrom(prometheus.GaugeOpts{
		Name: "service_port_http",
	}, []string{"value"})

	service_pid metrics.Gauge = kitprometheus.NewGaugeFrom(prometheus.GaugeOpts{
		Name: "service_pid",
	}, []string{"value"})
)

var (
	buildInfoMu sync.Mutex
	buildInfo   *prometheus.GaugeVec
)

// ServiceParams параметры запущенного шлюза, публикуемые в метриках
type ServiceParams struct {
	Name, Version, Status, Basename, ProxyTarget, PortHTTP, Pid string
}

func SendServiceParamsToMetric(p ServiceParams) {
	var count float64
	service_name.With("value", p.Name).Set(count)
	service_version.With("value", p.Version).Set(count)
	service_status.With("value", p.Status).Set(count)
	service_basename.With("value", p.Basename).Set(count)
	service_proxy_target.With("value", p.ProxyTarget).Set(count)
	service_port_http.With("value", p.PortHTTP).Set(count)
	service_pid.With("value", p.Pid).Set(count)
}

// NewBuildInfo создает метрику <name>_build_info
// регистрация остается на вызывающем
func NewBuildInfo(name string) *prometheus.GaugeVec {
	name = metricName(name)

	gv := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name + "_build_info",
			Help: name + " was built with version, revision, dc and goversion labels",
		},
		[]string{"version", "revision", "dc", "goversion"},
	)

	buildInfoMu.Lock()
	buildInfo = gv
	buildInfoMu.Unlock()

	return gv
}

// SetBuildInfo выставляет значения для последней созданной NewBuildInfo метрики
func SetBuildInfo(version, revision, dc string) {
	buildInfoMu.Lock()
	defer buildInfoMu.Unlock()

	if buildInfo == nil {
		return
	}
	buildInfo.Reset()
	buildInfo.WithLabelValues(version, revision, dc, runtime.Version()).Set(1)
}

func metricName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "onlyflow"
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, name)
}
