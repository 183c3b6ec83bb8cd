package validator

import "github.com/goliatone/go-errors"

var (
	// ErrValidation is wrapped by every Violation so callers can detect
	// validation failures with errors.Is across wrapping layers.
	ErrValidation = errors.New("validation error", errors.CategoryValidation).WithTextCode("VALIDATION_FAILED")

	// ErrInvalidPattern is returned when StringSpec.Pattern does not compile.
	// It signals a malformed spec, not an invalid value.
	ErrInvalidPattern = errors.New("validator: invalid pattern", errors.CategoryBadInput).WithTextCode("INVALID_PATTERN")
)
