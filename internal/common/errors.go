// Package common holds sentinel errors shared across layers.
package common

import "errors"

var (
	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized indicates bad credentials or a missing,
	// malformed, or expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound indicates the target record is absent or not
	// owned by the caller. The two causes are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("not found")
	// ErrInternal indicates an infrastructure failure, e.g. the
	// store being unreachable.
	ErrInternal = errors.New("internal error")
)
