package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/SenneDW/authkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the host application.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the host application.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds metric instruments for token and account operations. A nil
// *Metrics is valid and records nothing, so callers never need to branch.
type Metrics struct {
	acquireTotal     metric.Int64Counter
	acquireDuration  metric.Float64Histogram
	accountOpTotal   metric.Int64Counter
	brokerErrorTotal metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	acquireTotal, err := meter.Int64Counter("token.acquire.total",
		metric.WithDescription("Total number of token acquisitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token.acquire.total counter: %w", err)
	}

	acquireDuration, err := meter.Float64Histogram("token.acquire.duration",
		metric.WithDescription("Duration of token acquisitions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token.acquire.duration histogram: %w", err)
	}

	accountOpTotal, err := meter.Int64Counter("account.operation.total",
		metric.WithDescription("Total number of account operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating account.operation.total counter: %w", err)
	}

	brokerErrorTotal, err := meter.Int64Counter("broker.error.total",
		metric.WithDescription("Total number of broker operation failures"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating broker.error.total counter: %w", err)
	}

	return &Metrics{
		acquireTotal:     acquireTotal,
		acquireDuration:  acquireDuration,
		accountOpTotal:   accountOpTotal,
		brokerErrorTotal: brokerErrorTotal,
	}, nil
}

// RecordAcquisition records one token acquisition outcome.
func (m *Metrics) RecordAcquisition(ctx context.Context, operation string, d time.Duration, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Bool("success", err == nil),
	)
	m.acquireTotal.Add(ctx, 1, attrs)
	m.acquireDuration.Record(ctx, d.Seconds(), attrs)
	if err != nil {
		m.brokerErrorTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
	}
}

// RecordAccountOperation records one account operation outcome.
func (m *Metrics) RecordAccountOperation(ctx context.Context, operation string, err error) {
	if m == nil {
		return
	}
	m.accountOpTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Bool("success", err == nil),
	))
	if err != nil {
		m.brokerErrorTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
	}
}
