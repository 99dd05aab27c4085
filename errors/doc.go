// Package errors provides the unified error type for the authkit SDK.
// It implements structured errors with machine-readable codes so hosts can
// distinguish caller bugs (calling before initialization) from recoverable
// configuration failures and plain broker passthrough failures.
package errors
