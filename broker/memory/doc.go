// Package memory provides an in-memory broker for tests, examples, and
// development hosts.
//
// It mimics the observable behavior of a platform broker: interactive
// acquisition runs a pluggable sign-in hook, silent acquisition serves a
// per-account session cache, and sign-out clears the session the way a
// dedicated platform sign-out would. Tokens are opaque random strings; no
// protocol work happens here.
package memory
