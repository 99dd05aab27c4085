// Package observability provides optional OpenTelemetry wiring for the
// authkit SDK: an OTLP-HTTP tracer and meter setup plus metric instruments
// for token and account operations. Nothing here is required; a client
// without a tracer or metrics configured performs no telemetry work.
package observability
