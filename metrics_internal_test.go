package lib

import (
	"testing"

	"github.com/go-kit/kit/metrics"
	"github.com/stretchr/testify/assert"
)

// stub-реализация metrics.Gauge
type gaugeStub struct {
	lastLabels []string
	lastSet    float64
}

func (g *gaugeStub) With(labelValues ...string) metrics.Gauge {
	g.lastLabels = labelValues
	return g
}
func (g *gaugeStub) Add(delta float64) { /*no-op*/ }
func (g *gaugeStub) Set(v float64)     { g.lastSet = v }

func TestSendServiceParamsToMetric(t *testing.T) {
	saved := []metrics.Gauge{service_name, service_version, service_status, service_basename, service_proxy_target, service_port_http, service_pid}
	defer func() {
		service_name, service_version, service_status, service_basename = saved[0], saved[1], saved[2], saved[3]
		service_proxy_target, service_port_http, service_pid = saved[4], saved[5], saved[6]
	}()

	stubName := &gaugeStub{lastSet: -1}
	stubVer := &gaugeStub{lastSet: -1}
	stubStatus := &gaugeStub{lastSet: -1}
	stubBase := &gaugeStub{lastSet: -1}
	stubTarget := &gaugeStub{lastSet: -1}
	stubPort := &gaugeStub{lastSet: -1}
	stubPID := &gaugeStub{lastSet: -1}

	service_name = stubName
	service_version = stubVer
	service_status = stubStatus
	service_basename = stubBase
	service_proxy_target = stubTarget
	service_port_http = stubPort
	service_pid = stubPID

	SendServiceParamsToMetric(ServiceParams{
		Name: "N", Version: "V", Status: "S",
		Basename: "/B/", ProxyTarget: "http://T", PortHTTP: "PH", Pid: "P",
	})

	cases := []struct {
		stub *gaugeStub
		want string
	}{
		{stubName, "N"},
		{stubVer, "V"},
		{stubStatus, "S"},
		{stubBase, "/B/"},
		{stubTarget, "http://T"},
		{stubPort, "PH"},
		{stubPID, "P"},
	}
	for _, c := range cases {
		assert.Equal(t, []string{"value", c.want}, c.stub.lastLabels)
		assert.Equal(t, 0.0, c.stub.lastSet)
	}
}

func TestMetricName(t *testing.T) {
	assert.Equal(t, "onlyflow", metricName(""))
	assert.Equal(t, "onlyflow_front", metricName("onlyflow-front"))
	assert.Equal(t, "a_b_c", metricName(" a.b/c "))
}
