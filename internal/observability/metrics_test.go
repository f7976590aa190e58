package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetricsForTesting()

	m.SimulationsTotal.WithLabelValues("ok").Inc()
	m.SimulationsTotal.WithLabelValues("ok").Inc()
	m.SimulationsTotal.WithLabelValues("invalid_input").Inc()
	m.ReportsGenerated.Inc()

	if got := testutil.ToFloat64(m.SimulationsTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("simulations ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.SimulationsTotal.WithLabelValues("invalid_input")); got != 1 {
		t.Errorf("simulations invalid_input = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ReportsGenerated); got != 1 {
		t.Errorf("reports generated = %v, want 1", got)
	}
}
