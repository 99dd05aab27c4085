package broker

import "time"

// Config holds the provider-specific identity and endpoint settings handed
// to the broker's setup handshake. It is immutable for the lifetime of a
// client.
type Config struct {
	// ClientID is the application (client) identifier registered with the
	// identity provider.
	ClientID string `json:"client_id" yaml:"client_id" mapstructure:"client_id" validate:"required"`
	// Authority is the issuer endpoint, e.g.
	// "https://login.microsoftonline.com/common".
	Authority string `json:"authority" yaml:"authority" mapstructure:"authority" validate:"required,url"`
	// RedirectURI overrides the broker's default redirect, when the platform
	// registration requires it.
	RedirectURI string `json:"redirect_uri,omitempty" yaml:"redirect_uri" mapstructure:"redirect_uri" validate:"omitempty,uri"`
	// KnownAuthorities lists additional trusted authority hosts (B2C style
	// deployments).
	KnownAuthorities []string `json:"known_authorities,omitempty" yaml:"known_authorities" mapstructure:"known_authorities"`
	// Extra carries broker-specific settings the SDK does not interpret.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra" mapstructure:"extra"`
}

// Account identifies a previously authenticated identity. It is created and
// owned by the broker; the SDK passes it through unchanged.
type Account struct {
	// Identifier is the broker's unique key for the account.
	Identifier string `json:"identifier"`
	// Username is the account's login name (usually a UPN or email).
	Username string `json:"username,omitempty"`
	// Name is the account's display name, if the broker caches one.
	Name string `json:"name,omitempty"`
	// Environment is the identity environment host the account came from.
	Environment string `json:"environment,omitempty"`
	// TenantID is the directory tenant the account belongs to.
	TenantID string `json:"tenant_id,omitempty"`
	// Claims holds ID-token claims the broker chose to expose. Opaque to
	// the SDK.
	Claims map[string]any `json:"claims,omitempty"`
}

// AuthResult holds a bearer credential and its metadata, created by the
// broker on successful acquisition.
type AuthResult struct {
	// AccessToken is the bearer credential.
	AccessToken string `json:"access_token"`
	// IDToken is the raw ID token, if the broker returned one. Never parsed
	// by the SDK.
	IDToken string `json:"id_token,omitempty"`
	// Account is the identity the token was issued for.
	Account Account `json:"account"`
	// Scopes are the scopes actually granted.
	Scopes []string `json:"scopes,omitempty"`
	// ExpiresOn is the access token's expiry.
	ExpiresOn time.Time `json:"expires_on"`
	// CorrelationID echoes the request's correlation ID.
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Prompt controls interactive sign-in behavior.
type Prompt string

const (
	// PromptDefault lets the broker decide whether to show UI.
	PromptDefault Prompt = ""
	// PromptLogin forces the user to enter credentials.
	PromptLogin Prompt = "login"
	// PromptConsent forces the consent dialog.
	PromptConsent Prompt = "consent"
	// PromptSelectAccount shows the account picker.
	PromptSelectAccount Prompt = "select_account"
)

// InteractiveParams holds parameters for an interactive token acquisition.
type InteractiveParams struct {
	// Scopes are the requested scopes.
	Scopes []string `json:"scopes"`
	// Authority overrides the configured authority for this request.
	Authority string `json:"authority,omitempty"`
	// LoginHint pre-fills the username field.
	LoginHint string `json:"login_hint,omitempty"`
	// Prompt controls the sign-in UI behavior.
	Prompt Prompt `json:"prompt,omitempty"`
	// ExtraQueryParameters are appended to the authorization request.
	ExtraQueryParameters map[string]string `json:"extra_query_parameters,omitempty"`
	// CorrelationID ties the request to host-side telemetry. Filled by the
	// client when empty.
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SilentParams holds parameters for a silent token acquisition.
type SilentParams struct {
	// Account is the cached identity to acquire a token for.
	Account Account `json:"account"`
	// Scopes are the requested scopes.
	Scopes []string `json:"scopes"`
	// Authority overrides the configured authority for this request.
	Authority string `json:"authority,omitempty"`
	// ForceRefresh bypasses the cached access token.
	ForceRefresh bool `json:"force_refresh,omitempty"`
	// CorrelationID ties the request to host-side telemetry. Filled by the
	// client when empty.
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SignOutParams holds parameters for a sign-out request.
type SignOutParams struct {
	// Account is the identity to sign out.
	Account Account `json:"account"`
	// SignOutFromBrowser also clears any browser-held session, on brokers
	// that support it.
	SignOutFromBrowser bool `json:"sign_out_from_browser,omitempty"`
}
