// Package validation validates configuration structs with
// go-playground/validator struct tags, reporting failures as
// INVALID_CONFIGURATION errors with per-field detail.
package validation
