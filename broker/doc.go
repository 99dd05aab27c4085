// Package broker defines the broker interface and common types for
// interacting with native authentication backends.
//
// A broker owns all protocol work: OAuth/OIDC token acquisition, silent
// refresh, the secure token cache, and platform redirect handling. The SDK
// never interprets tokens or accounts; it passes them through.
//
// # Backends
//
//   - broker/memory: in-memory broker for tests, examples, and development
//
// # Usage
//
//	reg := broker.NewRegistry()
//	reg.RegisterFactory("memory", func(cfg map[string]any) (broker.Broker, error) {
//		return memory.New(), nil
//	})
//	b, err := reg.Create("memory", nil)
package broker
