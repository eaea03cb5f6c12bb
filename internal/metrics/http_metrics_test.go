package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()

	var m dto.Metric
	counter, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("get counter: %v", err)
	}
	if err := counter.Write(&m); err != nil {
		t.Fatalf("write counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()

	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestHTTPMetrics_ObserveRequest(t *testing.T) {
	m := newHTTPMetricsWithRegisterer(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/products", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "/products", 200, 5*time.Millisecond)
	m.ObserveRequest("POST", "/orders", 400, time.Millisecond)

	if got := counterValue(t, m.requestsTotal, "GET", "/products", "200"); got != 2 {
		t.Errorf("expected 2 GET /products requests, got %f", got)
	}
	if got := counterValue(t, m.requestsTotal, "POST", "/orders", "400"); got != 1 {
		t.Errorf("expected 1 POST /orders request, got %f", got)
	}
}

func TestHTTPMetrics_InFlight(t *testing.T) {
	m := newHTTPMetricsWithRegisterer(prometheus.NewRegistry())

	m.IncInFlight()
	m.IncInFlight()
	if got := gaugeValue(t, m.inFlight); got != 2 {
		t.Errorf("expected 2 in-flight, got %f", got)
	}

	m.DecInFlight()
	if got := gaugeValue(t, m.inFlight); got != 1 {
		t.Errorf("expected 1 in-flight, got %f", got)
	}
}

func TestHTTPMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *HTTPMetrics

	m.ObserveRequest("GET", "/products", 200, time.Millisecond)
	m.IncInFlight()
	m.DecInFlight()
}

func TestHTTPMetrics_DoubleRegistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newHTTPMetricsWithRegisterer(registry)
	second := newHTTPMetricsWithRegisterer(registry)

	first.ObserveRequest("GET", "/products", 200, time.Millisecond)
	second.ObserveRequest("GET", "/products", 200, time.Millisecond)

	if got := counterValue(t, second.requestsTotal, "GET", "/products", "200"); got != 2 {
		t.Errorf("expected shared counter with value 2, got %f", got)
	}
}
