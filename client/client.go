package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/SenneDW/authkit/broker"
	"github.com/SenneDW/authkit/errors"
	"github.com/SenneDW/authkit/logger"
	"github.com/SenneDW/authkit/observability"
	"github.com/SenneDW/authkit/validation"
)

// Operation names used in errors, logs, spans, and metrics.
const (
	OpInitialize              = "Initialize"
	OpAcquireTokenInteractive = "AcquireTokenInteractive"
	OpAcquireTokenSilent      = "AcquireTokenSilent"
	OpAccounts                = "Accounts"
	OpAccountByID             = "AccountByID"
	OpRemoveAccount           = "RemoveAccount"
	OpSignOut                 = "SignOut"
)

// initAttempt is a single in-flight setup handshake shared by every caller
// that arrives while it runs.
type initAttempt struct {
	done chan struct{}
	err  error
}

// Client gates broker operations behind a one-time initialization handshake
// and forwards everything else verbatim.
//
// The lifecycle has two states: uninitialized and ready. Ready is terminal;
// there is no de-initialization. Calling any operation other than Initialize
// before the client is ready fails with a NOT_INITIALIZED error.
type Client struct {
	cfg    broker.Config
	broker broker.Broker

	log     *logger.Logger
	tracer  trace.Tracer
	metrics *observability.Metrics

	mu       sync.Mutex
	ready    atomic.Bool
	inflight *initAttempt
}

// New creates a client for the given configuration and broker binding. The
// configuration is validated here; the broker does not see it until
// Initialize.
func New(cfg broker.Config, b broker.Broker, opts ...Option) (*Client, error) {
	if b == nil {
		return nil, errors.BrokerUnavailable("(none)")
	}
	if err := validation.Validate(cfg); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:    cfg,
		broker: b,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromRegistry creates a client whose broker is resolved by name from the
// default registry. An unregistered name surfaces as BROKER_UNAVAILABLE so
// hosts see missing platform linking at startup.
func NewFromRegistry(cfg broker.Config, brokerName string, opts ...Option) (*Client, error) {
	b, err := broker.DefaultRegistry().Resolve(brokerName, cfg.Extra)
	if err != nil {
		return nil, err
	}
	return New(cfg, b, opts...)
}

// Broker returns the underlying broker binding.
func (c *Client) Broker() broker.Broker { return c.broker }

// IsInitialized reports whether the setup handshake has completed.
func (c *Client) IsInitialized() bool { return c.ready.Load() }

// Initialize performs the broker's setup handshake exactly once. It is
// idempotent: after the first success every call returns immediately, and
// concurrent first calls share a single in-flight attempt. On failure the
// client stays uninitialized and Initialize can be retried.
//
// The client itself is returned on success so hosts can chain:
//
//	c, err := client.New(cfg, b)
//	...
//	c, err = c.Initialize(ctx)
func (c *Client) Initialize(ctx context.Context) (*Client, error) {
	if c.ready.Load() {
		return c, nil
	}

	c.mu.Lock()
	if c.ready.Load() {
		c.mu.Unlock()
		return c, nil
	}
	if attempt := c.inflight; attempt != nil {
		c.mu.Unlock()
		select {
		case <-attempt.done:
			if attempt.err != nil {
				return nil, attempt.err
			}
			return c, nil
		case <-ctx.Done():
			// The attempt keeps running for the caller that started it.
			return nil, ctx.Err()
		}
	}
	attempt := &initAttempt{done: make(chan struct{})}
	c.inflight = attempt
	c.mu.Unlock()

	start := time.Now()
	ctx, end := c.startSpan(ctx, OpInitialize)
	err := c.broker.CreateClient(ctx, c.cfg)
	end(err)

	c.mu.Lock()
	if err != nil {
		attempt.err = errors.InitializationFailed(err)
	} else {
		c.ready.Store(true)
	}
	c.inflight = nil
	c.mu.Unlock()
	close(attempt.done)

	if attempt.err != nil {
		c.log.Debug("broker setup failed", logger.ErrorFields(OpInitialize, err))
		return nil, attempt.err
	}
	c.log.Debug("broker setup complete", logger.Fields(
		logger.FieldBroker, c.broker.Name(),
		logger.FieldClientID, c.cfg.ClientID,
		logger.FieldAuthority, c.cfg.Authority,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return c, nil
}

// AcquireTokenInteractive acquires a token with user interaction. The result
// is the broker's, verbatim; a nil result with nil error means the broker
// reported a dismissed flow.
func (c *Client) AcquireTokenInteractive(ctx context.Context, params broker.InteractiveParams) (*broker.AuthResult, error) {
	if err := c.guard(OpAcquireTokenInteractive); err != nil {
		return nil, err
	}
	if params.CorrelationID == "" {
		params.CorrelationID = uuid.NewString()
	}

	start := time.Now()
	ctx, end := c.startSpan(ctx, OpAcquireTokenInteractive)
	res, err := c.broker.AcquireTokenInteractive(ctx, params)
	end(err)

	c.metrics.RecordAcquisition(ctx, OpAcquireTokenInteractive, time.Since(start), err)
	c.logOutcome(OpAcquireTokenInteractive, params.CorrelationID, start, err)
	return res, err
}

// AcquireTokenSilent acquires a token from the broker's cache without user
// interaction. Failures (including a missing cached session) are the
// broker's, passed through unchanged.
func (c *Client) AcquireTokenSilent(ctx context.Context, params broker.SilentParams) (*broker.AuthResult, error) {
	if err := c.guard(OpAcquireTokenSilent); err != nil {
		return nil, err
	}
	if params.CorrelationID == "" {
		params.CorrelationID = uuid.NewString()
	}

	start := time.Now()
	ctx, end := c.startSpan(ctx, OpAcquireTokenSilent)
	res, err := c.broker.AcquireTokenSilent(ctx, params)
	end(err)

	c.metrics.RecordAcquisition(ctx, OpAcquireTokenSilent, time.Since(start), err)
	c.logOutcome(OpAcquireTokenSilent, params.CorrelationID, start, err)
	return res, err
}

// Accounts returns the broker's cached accounts. Order and contents are the
// broker's.
func (c *Client) Accounts(ctx context.Context) ([]broker.Account, error) {
	if err := c.guard(OpAccounts); err != nil {
		return nil, err
	}

	ctx, end := c.startSpan(ctx, OpAccounts)
	accounts, err := c.broker.Accounts(ctx)
	end(err)

	c.metrics.RecordAccountOperation(ctx, OpAccounts, err)
	return accounts, err
}

// AccountByID returns the cached account with the given identifier, or nil
// when the broker knows no such account.
func (c *Client) AccountByID(ctx context.Context, identifier string) (*broker.Account, error) {
	if err := c.guard(OpAccountByID); err != nil {
		return nil, err
	}

	ctx, end := c.startSpan(ctx, OpAccountByID)
	account, err := c.broker.AccountByID(ctx, identifier)
	end(err)

	c.metrics.RecordAccountOperation(ctx, OpAccountByID, err)
	return account, err
}

// RemoveAccount asks the broker to purge the account's cached credentials
// and returns the broker's boolean unchanged.
func (c *Client) RemoveAccount(ctx context.Context, account broker.Account) (bool, error) {
	if err := c.guard(OpRemoveAccount); err != nil {
		return false, err
	}

	ctx, end := c.startSpan(ctx, OpRemoveAccount)
	removed, err := c.broker.RemoveAccount(ctx, account)
	end(err)

	c.metrics.RecordAccountOperation(ctx, OpRemoveAccount, err)
	return removed, err
}

// SignOut signs the account out. Brokers with a dedicated sign-out operation
// (broker.SignOutSupport) get it invoked, clearing browser-held sessions as
// they see fit; for all others sign-out degrades to removing the same
// account. Both paths return the broker's boolean unchanged.
func (c *Client) SignOut(ctx context.Context, params broker.SignOutParams) (bool, error) {
	if err := c.guard(OpSignOut); err != nil {
		return false, err
	}

	ctx, end := c.startSpan(ctx, OpSignOut)
	var ok bool
	var err error
	if so, supported := c.broker.(broker.SignOutSupport); supported {
		ok, err = so.SignOut(ctx, params)
	} else {
		ok, err = c.broker.RemoveAccount(ctx, params.Account)
	}
	end(err)

	c.metrics.RecordAccountOperation(ctx, OpSignOut, err)
	return ok, err
}

// guard rejects operations while the client is uninitialized. A guard
// failure is a caller sequencing bug, not a broker condition.
func (c *Client) guard(op string) error {
	if !c.ready.Load() {
		return errors.NotInitialized(op)
	}
	return nil
}

// startSpan wraps an operation in a span when a tracer is configured. The
// returned func records the outcome and ends the span.
func (c *Client) startSpan(ctx context.Context, op string) (context.Context, func(error)) {
	if c.tracer == nil {
		return ctx, func(error) {}
	}
	ctx, span := c.tracer.Start(ctx, "authkit."+op,
		trace.WithAttributes(
			attribute.String("auth.broker", c.broker.Name()),
			attribute.String("auth.client_id", c.cfg.ClientID),
		),
	)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

func (c *Client) logOutcome(op, correlationID string, start time.Time, err error) {
	fields := logger.Fields(
		logger.FieldOperation, op,
		logger.FieldCorrelationID, correlationID,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	)
	if err != nil {
		c.log.Debug("broker operation failed", fields, logger.Fields(logger.FieldError, err.Error()))
		return
	}
	c.log.Debug("broker operation complete", fields)
}
