package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/metrics"
)

func upValue(t *testing.T, target string) (float64, bool) {
	t.Helper()
	mfs, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range mfs {
		if mf.GetName() != "upstream_up" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "target" && lp.GetValue() == target {
					return m.GetGauge().GetValue(), true
				}
			}
		}
	}
	return 0, false
}

func TestObserveUpstream(t *testing.T) {
	target := "http://backend:7860"

	metrics.ObserveUpstream(target, true, time.Now().Add(-10*time.Millisecond))
	v, ok := upValue(t, target)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	metrics.ObserveUpstream(target, false, time.Now())
	v, _ = upValue(t, target)
	assert.Equal(t, 0.0, v)
}
