package broker

import "context"

// Broker is the interface native authentication backends must implement.
//
// Every method other than Name and IsAvailable may block on platform UI or
// network and must honor the context. An interactive acquisition may return
// (nil, nil) when the user dismisses the flow; the SDK passes that through
// as-is.
type Broker interface {
	// Name returns the broker's unique name.
	Name() string
	// IsAvailable checks if the broker binding is ready to handle requests.
	IsAvailable(ctx context.Context) bool

	// CreateClient performs the broker's one-time setup handshake with the
	// given configuration.
	CreateClient(ctx context.Context, cfg Config) error

	// AcquireTokenInteractive acquires a token with user interaction.
	AcquireTokenInteractive(ctx context.Context, params InteractiveParams) (*AuthResult, error)

	// AcquireTokenSilent acquires a token from the broker's cache, refreshing
	// if needed.
	AcquireTokenSilent(ctx context.Context, params SilentParams) (*AuthResult, error)

	// Accounts returns all accounts in the broker's cache. Order is owned by
	// the broker.
	Accounts(ctx context.Context) ([]Account, error)

	// AccountByID returns the cached account with the given identifier, or
	// nil when none matches.
	AccountByID(ctx context.Context, identifier string) (*Account, error)

	// RemoveAccount purges the account's cached credentials and reports
	// whether anything was removed.
	RemoveAccount(ctx context.Context, account Account) (bool, error)
}

// SignOutSupport is an optional capability interface for brokers with a
// dedicated sign-out operation that also clears browser-held sessions.
// Brokers without it get sign-out degraded to account removal by the client.
type SignOutSupport interface {
	// SignOut signs the account out and reports success.
	SignOut(ctx context.Context, params SignOutParams) (bool, error)
}

// Factory creates a broker instance from configuration.
type Factory func(cfg map[string]any) (Broker, error)
