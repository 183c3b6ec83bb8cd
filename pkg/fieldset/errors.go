package fieldset

import "github.com/goliatone/go-errors"

// ErrUnknownKind is returned for a field whose Kind names no validator.
var ErrUnknownKind = errors.New("fieldset: unknown field kind", errors.CategoryBadInput).WithTextCode("UNKNOWN_FIELD_KIND")
