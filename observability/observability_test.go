package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("sample-app")

	if cfg.ServiceName != "sample-app" {
		t.Errorf("expected ServiceName 'sample-app', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("sample-app")

	if cfg.ServiceName != "sample-app" {
		t.Errorf("expected ServiceName 'sample-app', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestNewMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordAcquisition(ctx, "AcquireTokenSilent", 100*time.Millisecond, nil)
	metrics.RecordAcquisition(ctx, "AcquireTokenInteractive", time.Second, errors.New("dismissed"))
	metrics.RecordAccountOperation(ctx, "Accounts", nil)
	metrics.RecordAccountOperation(ctx, "SignOut", errors.New("broker gone"))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordAcquisition(context.Background(), "AcquireTokenSilent", time.Second, nil)
	m.RecordAccountOperation(context.Background(), "Accounts", nil)
}
