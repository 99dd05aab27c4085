// Package version reports SDK identity: name, version, and a user-agent
// style token hosts and brokers can attach to their own telemetry.
package version
