package messages

import "github.com/goliatone/go-errors"

var (
	// ErrUnknownKey marks an override entry that names no catalog key.
	ErrUnknownKey = errors.New("messages: unknown catalog key", errors.CategoryBadInput).WithTextCode("UNKNOWN_MESSAGE_KEY")

	// ErrEmptyTemplate marks an override entry that sanitizes to nothing.
	ErrEmptyTemplate = errors.New("messages: empty message template", errors.CategoryBadInput).WithTextCode("EMPTY_MESSAGE_TEMPLATE")

	// ErrInvalidDocument marks an override file that is neither a JSON nor a
	// YAML mapping of strings.
	ErrInvalidDocument = errors.New("messages: invalid JSON or YAML document", errors.CategoryBadInput).WithTextCode("INVALID_MESSAGE_DOCUMENT")
)
