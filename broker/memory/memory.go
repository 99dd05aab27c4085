package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SenneDW/authkit/broker"
	"github.com/SenneDW/authkit/errors"
)

// BrokerName is the name the memory broker registers under.
const BrokerName = "memory"

// DefaultTokenTTL is the lifetime of issued access tokens.
const DefaultTokenTTL = time.Hour

func init() {
	broker.Register(BrokerName, func(cfg map[string]any) (broker.Broker, error) {
		return New(), nil
	})
}

// SignInHandler decides the outcome of an interactive acquisition. Returning
// a nil account models the user dismissing the flow.
type SignInHandler func(ctx context.Context, params broker.InteractiveParams) (*broker.Account, error)

// session is a cached sign-in for one account.
type session struct {
	account   broker.Account
	token     string
	scopes    []string
	expiresOn time.Time
}

// Broker is an in-memory broker.Broker with full sign-out support.
type Broker struct {
	mu       sync.RWMutex
	cfg      broker.Config
	created  bool
	handler  SignInHandler
	ttl      time.Duration
	now      func() time.Time
	setupErr error
	sessions map[string]*session
	order    []string
}

// Option configures the memory broker.
type Option func(*Broker)

// WithSignInHandler sets the interactive sign-in hook.
func WithSignInHandler(h SignInHandler) Option {
	return func(b *Broker) { b.handler = h }
}

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(b *Broker) { b.ttl = ttl }
}

// WithClock sets the time source, for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(b *Broker) { b.now = now }
}

// WithSetupError makes CreateClient fail with the given error.
func WithSetupError(err error) Option {
	return func(b *Broker) { b.setupErr = err }
}

// New creates a memory broker.
func New(opts ...Option) *Broker {
	b := &Broker{
		ttl:      DefaultTokenTTL,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the broker's unique name.
func (b *Broker) Name() string { return BrokerName }

// IsAvailable checks if the broker is ready to handle requests.
func (b *Broker) IsAvailable(ctx context.Context) bool { return true }

// CreateClient performs the one-time setup handshake.
func (b *Broker) CreateClient(ctx context.Context, cfg broker.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.setupErr != nil {
		return b.setupErr
	}
	b.cfg = cfg
	b.created = true
	return nil
}

// SeedAccount places an already-signed-in account in the cache.
func (b *Broker) SeedAccount(account broker.Account, scopes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.putSessionLocked(account, scopes)
}

// AcquireTokenInteractive runs the sign-in hook and caches the resulting
// session. A nil account from the hook is a dismissed flow and yields a nil
// result with no error.
func (b *Broker) AcquireTokenInteractive(ctx context.Context, params broker.InteractiveParams) (*broker.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	handler := b.handler
	b.mu.RUnlock()

	var account *broker.Account
	if handler != nil {
		var err error
		account, err = handler(ctx, params)
		if err != nil {
			return nil, err
		}
	}
	if account == nil {
		return nil, nil
	}
	if account.Identifier == "" {
		account.Identifier = uuid.NewString()
	}

	b.mu.Lock()
	sess := b.putSessionLocked(*account, params.Scopes)
	b.mu.Unlock()

	return b.result(sess, params.CorrelationID), nil
}

// AcquireTokenSilent serves a token from the session cache, reissuing on
// force refresh or expiry.
func (b *Broker) AcquireTokenSilent(ctx context.Context, params broker.SilentParams) (*broker.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sess, ok := b.sessions[params.Account.Identifier]
	if !ok {
		return nil, errors.NoCachedAccount(params.Account.Identifier)
	}
	if params.ForceRefresh || !b.now().Before(sess.expiresOn) {
		sess = b.putSessionLocked(sess.account, firstNonEmpty(params.Scopes, sess.scopes))
	}

	return b.result(sess, params.CorrelationID), nil
}

// Accounts returns cached accounts in sign-in order.
func (b *Broker) Accounts(ctx context.Context) ([]broker.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	accounts := make([]broker.Account, 0, len(b.order))
	for _, id := range b.order {
		if sess, ok := b.sessions[id]; ok {
			accounts = append(accounts, sess.account)
		}
	}
	return accounts, nil
}

// AccountByID returns the cached account with the given identifier, or nil.
func (b *Broker) AccountByID(ctx context.Context, identifier string) (*broker.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	sess, ok := b.sessions[identifier]
	if !ok {
		return nil, nil
	}
	account := sess.account
	return &account, nil
}

// RemoveAccount purges the account's session and reports whether one existed.
func (b *Broker) RemoveAccount(ctx context.Context, account broker.Account) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.removeLocked(account.Identifier), nil
}

// SignOut implements broker.SignOutSupport. The browser-session flag is
// accepted for interface parity; there is no browser here.
func (b *Broker) SignOut(ctx context.Context, params broker.SignOutParams) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.removeLocked(params.Account.Identifier), nil
}

func (b *Broker) putSessionLocked(account broker.Account, scopes []string) *session {
	sess := &session{
		account:   account,
		token:     uuid.NewString(),
		scopes:    scopes,
		expiresOn: b.now().Add(b.ttl),
	}
	if _, exists := b.sessions[account.Identifier]; !exists {
		b.order = append(b.order, account.Identifier)
	}
	b.sessions[account.Identifier] = sess
	return sess
}

func (b *Broker) removeLocked(identifier string) bool {
	if _, ok := b.sessions[identifier]; !ok {
		return false
	}
	delete(b.sessions, identifier)
	for i, id := range b.order {
		if id == identifier {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

func (b *Broker) result(sess *session, correlationID string) *broker.AuthResult {
	return &broker.AuthResult{
		AccessToken:   sess.token,
		Account:       sess.account,
		Scopes:        sess.scopes,
		ExpiresOn:     sess.expiresOn,
		CorrelationID: correlationID,
	}
}

func firstNonEmpty(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}

var _ broker.Broker = (*Broker)(nil)
var _ broker.SignOutSupport = (*Broker)(nil)
