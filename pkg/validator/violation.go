package validator

import (
	"errors"

	"github.com/goliatone/go-fieldcheck/pkg/messages"
)

// Violation is the first failed check reported by a validator. Message is
// the user-facing descriptor resolved from the catalog (or the spec's
// pattern error override).
type Violation struct {
	Key     messages.Key `json:"key"`
	Message string       `json:"message"`
}

// Error returns the descriptor unchanged.
func (v *Violation) Error() string {
	return v.Message
}

// Unwrap links every violation to ErrValidation.
func (v *Violation) Unwrap() error {
	return ErrValidation
}

// AsViolation extracts the Violation carried by err, if any.
func AsViolation(err error) (*Violation, bool) {
	var violation *Violation
	if errors.As(err, &violation) {
		return violation, true
	}
	return nil, false
}
