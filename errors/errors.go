package errors

import (
	"errors"
	"fmt"
)

// AuthError is the unified SDK error type.
type AuthError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AuthError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AuthError) WithCause(cause error) *AuthError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AuthError) WithDetail(key string, value any) *AuthError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AuthError with automatic retryable detection.
func New(code ErrorCode, message string) *AuthError {
	return &AuthError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// NotInitialized creates an error for an operation invoked before Initialize.
func NotInitialized(operation string) *AuthError {
	return &AuthError{
		Code:    ErrCodeNotInitialized,
		Message: fmt.Sprintf("%s called before Initialize completed", operation),
		Details: map[string]any{"operation": operation},
	}
}

// InitializationFailed creates an error for a failed broker setup handshake.
func InitializationFailed(cause error) *AuthError {
	return &AuthError{
		Code:      ErrCodeInitializationFailed,
		Message:   "broker setup failed; fix configuration and retry Initialize",
		Retryable: true,
		Cause:     cause,
	}
}

// BrokerUnavailable creates an error for a missing broker binding.
func BrokerUnavailable(name string) *AuthError {
	return &AuthError{
		Code:    ErrCodeBrokerUnavailable,
		Message: fmt.Sprintf("broker %q not available - check platform linking", name),
		Details: map[string]any{"broker": name},
	}
}

// InvalidConfiguration creates an error for client configuration that failed
// validation.
func InvalidConfiguration(reason string) *AuthError {
	return &AuthError{
		Code:    ErrCodeInvalidConfiguration,
		Message: fmt.Sprintf("invalid configuration: %s", reason),
	}
}

// NoCachedAccount creates an error for a silent acquisition with no cached
// session.
func NoCachedAccount(accountID string) *AuthError {
	return &AuthError{
		Code:    ErrCodeNoCachedAccount,
		Message: "no cached session for account; interactive acquisition required",
		Details: map[string]any{"account_id": accountID},
	}
}

// InteractionRequired creates an error for a silent acquisition that needs
// user interaction.
func InteractionRequired(reason string) *AuthError {
	return &AuthError{
		Code:    ErrCodeInteractionRequired,
		Message: reason,
	}
}

// UserCanceled creates an error for a dismissed interactive flow.
func UserCanceled() *AuthError {
	return &AuthError{
		Code:    ErrCodeUserCanceled,
		Message: "user canceled the interactive flow",
	}
}

// AccountNotFound creates an error for an unknown account identifier.
func AccountNotFound(accountID string) *AuthError {
	return &AuthError{
		Code:    ErrCodeAccountNotFound,
		Message: "account not found in broker cache",
		Details: map[string]any{"account_id": accountID},
	}
}

// BrokerFailure creates an error wrapping an arbitrary broker failure.
func BrokerFailure(operation string, cause error) *AuthError {
	return &AuthError{
		Code:      ErrCodeBrokerFailure,
		Message:   fmt.Sprintf("broker operation %s failed", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
		Cause:     cause,
	}
}

// --- Classification helpers ---

// CodeOf returns the ErrorCode of err, or an empty code when err is not an
// AuthError.
func CodeOf(err error) ErrorCode {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsNotInitialized reports whether err is a NOT_INITIALIZED guard failure.
func IsNotInitialized(err error) bool {
	return CodeOf(err) == ErrCodeNotInitialized
}

// IsInitializationFailed reports whether err is a failed setup handshake.
func IsInitializationFailed(err error) bool {
	return CodeOf(err) == ErrCodeInitializationFailed
}

// IsBrokerUnavailable reports whether err is a missing broker binding.
func IsBrokerUnavailable(err error) bool {
	return CodeOf(err) == ErrCodeBrokerUnavailable
}

// IsUserCanceled reports whether err is a dismissed interactive flow.
func IsUserCanceled(err error) bool {
	return CodeOf(err) == ErrCodeUserCanceled
}

// IsRetryable reports whether the operation that produced err can be retried.
func IsRetryable(err error) bool {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Retryable
	}
	return false
}
