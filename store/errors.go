package store

import (
	"errors"
	"fmt"
)

// Errors shared across the stores.
var (
	// ErrEmptyCart is returned when a checkout is submitted with no line items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrDraftClosed is returned when a content draft is saved after it was
	// already saved or canceled.
	ErrDraftClosed = errors.New("content draft already closed")
)

// ValidationError reports a missing or invalid required field. The failing
// operation performs no mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError wraps a JSON parse failure during snapshot import. No store is
// mutated when it is returned.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse snapshot: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
