package broker

import (
	"context"
	"testing"

	"github.com/SenneDW/authkit/errors"
)

// stubBroker implements the Broker interface for registry tests.
type stubBroker struct {
	name string
}

func (b *stubBroker) Name() string                         { return b.name }
func (b *stubBroker) IsAvailable(ctx context.Context) bool { return true }

func (b *stubBroker) CreateClient(ctx context.Context, cfg Config) error { return nil }
func (b *stubBroker) AcquireTokenInteractive(ctx context.Context, params InteractiveParams) (*AuthResult, error) {
	return nil, nil
}
func (b *stubBroker) AcquireTokenSilent(ctx context.Context, params SilentParams) (*AuthResult, error) {
	return nil, nil
}
func (b *stubBroker) Accounts(ctx context.Context) ([]Account, error) { return nil, nil }
func (b *stubBroker) AccountByID(ctx context.Context, id string) (*Account, error) {
	return nil, nil
}
func (b *stubBroker) RemoveAccount(ctx context.Context, account Account) (bool, error) {
	return false, nil
}

func TestRegistryRegisterAndCreate(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterFactory("stub", func(cfg map[string]any) (Broker, error) {
		return &stubBroker{name: "stub"}, nil
	})

	b, err := reg.Create("stub", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if b.Name() != "stub" {
		t.Errorf("expected name 'stub', got %q", b.Name())
	}
}

func TestRegistryCreateUnregistered(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Create("ios", nil)
	if err == nil {
		t.Fatal("expected error for unregistered broker")
	}
	if !errors.IsBrokerUnavailable(err) {
		t.Errorf("expected BROKER_UNAVAILABLE, got %v", err)
	}
}

func TestRegistryResolveCachesInstance(t *testing.T) {
	reg := NewRegistry()
	created := 0
	reg.RegisterFactory("stub", func(cfg map[string]any) (Broker, error) {
		created++
		return &stubBroker{name: "stub"}, nil
	})

	first, err := reg.Resolve("stub", nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := reg.Resolve("stub", nil)
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if created != 1 {
		t.Errorf("factory ran %d times, want 1", created)
	}
	if first != second {
		t.Error("Resolve should return the cached instance")
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterFactory("memory", func(cfg map[string]any) (Broker, error) {
		return &stubBroker{name: "memory"}, nil
	})
	reg.RegisterFactory("android", func(cfg map[string]any) (Broker, error) {
		return &stubBroker{name: "android"}, nil
	})

	names := reg.List()
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if names[0] != "android" || names[1] != "memory" {
		t.Errorf("expected sorted [android, memory], got %v", names)
	}
}
