package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAuthErrorMessage(t *testing.T) {
	err := NotInitialized("AcquireTokenSilent")
	if !strings.Contains(err.Error(), "NOT_INITIALIZED") {
		t.Errorf("expected code in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "AcquireTokenSilent") {
		t.Errorf("expected operation in message, got %q", err.Error())
	}
}

func TestAuthErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("redirect URI mismatch")
	err := InitializationFailed(cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "redirect URI mismatch") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestWithCauseAndDetail(t *testing.T) {
	cause := errors.New("boom")
	err := New(ErrCodeBrokerFailure, "broker exploded").
		WithCause(cause).
		WithDetail("broker", "memory")

	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Details["broker"] != "memory" {
		t.Errorf("expected broker detail, got %v", err.Details)
	}
}

func TestRetryableClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"initialization failure", InitializationFailed(errors.New("bad authority")), true},
		{"broker failure", BrokerFailure("Accounts", errors.New("ipc broken")), true},
		{"guard failure", NotInitialized("Accounts"), false},
		{"invalid config", InvalidConfiguration("client_id is required"), false},
		{"plain error", errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestCodeHelpers(t *testing.T) {
	if !IsNotInitialized(NotInitialized("SignOut")) {
		t.Error("IsNotInitialized should match")
	}
	if !IsInitializationFailed(InitializationFailed(errors.New("x"))) {
		t.Error("IsInitializationFailed should match")
	}
	if !IsBrokerUnavailable(BrokerUnavailable("android")) {
		t.Error("IsBrokerUnavailable should match")
	}
	if !IsUserCanceled(UserCanceled()) {
		t.Error("IsUserCanceled should match")
	}
	if IsNotInitialized(errors.New("plain")) {
		t.Error("plain errors must not classify")
	}
}

func TestCodeOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NoCachedAccount("u1"))
	if CodeOf(wrapped) != ErrCodeNoCachedAccount {
		t.Errorf("CodeOf through wrapping = %q, want %q", CodeOf(wrapped), ErrCodeNoCachedAccount)
	}
}
