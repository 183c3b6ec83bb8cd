package fieldset

import (
	"fmt"

	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

// Kind selects the validator a field is checked with.
type Kind string

const (
	KindArray   Kind = "array"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindObject  Kind = "object"
	KindString  Kind = "string"
)

// Field declares one input. Only the spec matching Kind is consulted.
// Nested describes the properties of an object field and Items the
// elements of an array field.
type Field struct {
	Name    string                `json:"name" yaml:"name"`
	Kind    Kind                  `json:"kind" yaml:"kind"`
	Array   validator.ArraySpec   `json:"array" yaml:"array"`
	Boolean validator.BooleanSpec `json:"boolean" yaml:"boolean"`
	Number  validator.NumberSpec  `json:"number" yaml:"number"`
	Object  validator.ObjectSpec  `json:"object" yaml:"object"`
	String  validator.StringSpec  `json:"string" yaml:"string"`
	Nested  []Field               `json:"nested,omitempty" yaml:"nested,omitempty"`
	Items   *Field                `json:"items,omitempty" yaml:"items,omitempty"`
}

// Required reports whether the spec for the field's kind is required.
func (f Field) Required() bool {
	switch f.Kind {
	case KindArray:
		return f.Array.Required
	case KindBoolean:
		return f.Boolean.Required
	case KindNumber:
		return f.Number.Required
	case KindObject:
		return f.Object.Required
	case KindString:
		return f.String.Required
	default:
		return false
	}
}

// Check reports spec-level faults in the field tree: unknown kinds and
// string patterns that do not compile.
func (f Field) Check() error {
	switch f.Kind {
	case KindArray, KindBoolean, KindNumber, KindObject:
	case KindString:
		if err := f.String.Check(); err != nil {
			return fmt.Errorf("fieldset: field %q: %w", f.Name, err)
		}
	default:
		return fmt.Errorf("%w %q (field %q)", ErrUnknownKind, f.Kind, f.Name)
	}
	for _, nested := range f.Nested {
		if err := nested.Check(); err != nil {
			return err
		}
	}
	if f.Items != nil {
		return f.Items.Check()
	}
	return nil
}
