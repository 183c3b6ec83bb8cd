package openapi

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
)

// Source identifies where an OpenAPI document originated so loaders can
// read files, fs.FS entries or remote URLs without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document wraps the raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("%w: %s", ErrEmptyDocument, src.Location())
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation is one OpenAPI operation reduced to the fields its request body
// declares.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Fields      []fieldset.Field
}

// NewOperation validates core fields.
func NewOperation(id, method, path string, fields []fieldset.Field) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("openapi: operation id is required")
	}
	if method == "" {
		return Operation{}, errors.New("openapi: operation method is required")
	}
	if path == "" {
		return Operation{}, errors.New("openapi: operation path is required")
	}
	return Operation{
		ID:     id,
		Method: method,
		Path:   path,
		Fields: fields,
	}, nil
}

// Field returns the top-level field called name.
func (op Operation) Field(name string) (fieldset.Field, bool) {
	for _, field := range op.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return fieldset.Field{}, false
}

// Lookup returns the operation with id from operations.
func Lookup(operations map[string]Operation, id string) (Operation, error) {
	op, ok := operations[id]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %q", ErrOperationNotFound, id)
	}
	return op, nil
}

// OperationIDs returns the ids in operations in lexical order.
func OperationIDs(operations map[string]Operation) []string {
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
