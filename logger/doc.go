// Package logger provides structured logging for the authkit SDK on top of
// zerolog. Hosts pass a *Logger to the client via an option; nothing in the
// SDK logs unless one is provided, and logging never alters error
// propagation.
package logger
