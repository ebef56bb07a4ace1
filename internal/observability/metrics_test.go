package observability

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func findFamily(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric family %s not registered", name)
	return nil
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.RecordExtraction("described", 3)
	m.RecordExtraction("described", 2)
	m.RecordExtraction("prices_only", 0)
	m.RecordOCR("ok", 300*time.Millisecond)
	m.RecordOCR("unavailable", 0)
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	if got := testutil.ToFloat64(m.receiptItems.WithLabelValues("described")); got != 5 {
		t.Errorf("receipt items = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.receiptFailures.WithLabelValues("prices_only")); got != 1 {
		t.Errorf("parse failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ocrRequests.WithLabelValues("unavailable")); got != 1 {
		t.Errorf("unavailable OCR = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.activeSessions); got != 1 {
		t.Errorf("active sessions = %v, want 1", got)
	}
}

func TestMetricsAreIndependent(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.SessionStarted()
	if got := testutil.ToFloat64(b.activeSessions); got != 0 {
		t.Errorf("registries share state: %v", got)
	}
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.ObserveRPC("/dutchie.v1.LedgerService/GetSettlement", "ok", 5*time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), "dutchie_rpc_duration_seconds") {
		t.Errorf("exposition missing rpc histogram:\n%s", body)
	}
}

func TestRecordSettlement(t *testing.T) {
	m := NewMetrics()
	m.RecordSettlement(2)
	m.RecordSettlement(0)

	f := findFamily(t, m, "dutchie_settlement_transfers")
	h := f.GetMetric()[0].GetHistogram()
	if h.GetSampleCount() != 2 {
		t.Errorf("sample count = %d, want 2", h.GetSampleCount())
	}
	if h.GetSampleSum() != 2 {
		t.Errorf("sample sum = %v, want 2", h.GetSampleSum())
	}
}

func TestObserveRPCLabels(t *testing.T) {
	m := NewMetrics()
	m.ObserveRPC("/dutchie.v1.LedgerService/AddPerson", "invalid_argument", time.Millisecond)

	f := findFamily(t, m, "dutchie_rpc_duration_seconds")
	labels := map[string]string{}
	for _, l := range f.GetMetric()[0].GetLabel() {
		labels[l.GetName()] = l.GetValue()
	}
	if labels["code"] != "invalid_argument" || labels["procedure"] != "/dutchie.v1.LedgerService/AddPerson" {
		t.Errorf("unexpected labels %v", labels)
	}
}

func TestInitTracerDisabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), "")
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}
