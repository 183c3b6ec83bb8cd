package openapi

import "github.com/goliatone/go-errors"

var (
	// ErrEmptyDocument is returned when a document has no payload.
	ErrEmptyDocument = errors.New("openapi: document is empty", errors.CategoryBadInput).WithTextCode("EMPTY_DOCUMENT")
	// ErrNoOperations is returned when a full document yields no operations.
	ErrNoOperations = errors.New("openapi: no operations extracted", errors.CategoryBadInput).WithTextCode("NO_OPERATIONS")
	// ErrOperationNotFound is returned when an operation id is not declared.
	ErrOperationNotFound = errors.New("openapi: operation not found", errors.CategoryNotFound).WithTextCode("OPERATION_NOT_FOUND")
	// ErrInvalidSource is returned for a location no Source can represent.
	ErrInvalidSource = errors.New("openapi: invalid source", errors.CategoryBadInput).WithTextCode("INVALID_SOURCE")
	// ErrUnsupportedSchema is returned for a property whose type maps to no field kind.
	ErrUnsupportedSchema = errors.New("openapi: unsupported schema", errors.CategoryBadInput).WithTextCode("UNSUPPORTED_SCHEMA")
)
