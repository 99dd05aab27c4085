package client

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/SenneDW/authkit/logger"
	"github.com/SenneDW/authkit/observability"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger enables debug-level operation logging. Logging never changes
// what the client returns; every failure still propagates to the caller.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log.WithComponent("client")
	}
}

// WithTracer wraps every broker call in a span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// WithMetrics records token and account operation metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}
