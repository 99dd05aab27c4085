package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Lifecycle errors
const (
	// ErrCodeNotInitialized indicates an operation was invoked before a
	// successful Initialize. This is a caller sequencing bug, not a
	// recoverable runtime condition.
	ErrCodeNotInitialized ErrorCode = "NOT_INITIALIZED"
	// ErrCodeInitializationFailed indicates the broker's setup handshake
	// failed. Recoverable by fixing configuration and retrying Initialize.
	ErrCodeInitializationFailed ErrorCode = "INITIALIZATION_FAILED"
	// ErrCodeBrokerUnavailable indicates no broker binding is present at
	// startup (missing platform linking or unregistered broker name).
	ErrCodeBrokerUnavailable ErrorCode = "BROKER_UNAVAILABLE"
)

// Configuration errors
const (
	// ErrCodeInvalidConfiguration indicates the client configuration failed
	// validation before it ever reached the broker.
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"
)

// Broker-surfaced errors. The facade never produces these itself; they are
// defined so broker implementations and hosts share one vocabulary.
const (
	// ErrCodeNoCachedAccount indicates a silent acquisition found no cached
	// session for the requested account.
	ErrCodeNoCachedAccount ErrorCode = "NO_CACHED_ACCOUNT"
	// ErrCodeInteractionRequired indicates silent acquisition cannot proceed
	// without user interaction.
	ErrCodeInteractionRequired ErrorCode = "INTERACTION_REQUIRED"
	// ErrCodeUserCanceled indicates the user dismissed an interactive flow,
	// when a broker chooses to report that as an error rather than an empty
	// result.
	ErrCodeUserCanceled ErrorCode = "USER_CANCELED"
	// ErrCodeAccountNotFound indicates an account operation referenced an
	// identifier the broker does not know.
	ErrCodeAccountNotFound ErrorCode = "ACCOUNT_NOT_FOUND"
	// ErrCodeBrokerFailure indicates any other failure surfaced by the
	// broker during an operation.
	ErrCodeBrokerFailure ErrorCode = "BROKER_FAILURE"
)

// retryableCodes marks codes where retrying the same call can succeed
// without the caller changing anything but timing or configuration.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeInitializationFailed: true,
	ErrCodeBrokerFailure:        true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
