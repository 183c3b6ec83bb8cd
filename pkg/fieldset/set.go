package fieldset

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-fieldcheck/pkg/messages"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

// Config carries the validator configuration for every kind. Messages
// applies to all kinds; a per-kind CustomErrorMessages entry wins over it.
type Config struct {
	Array    validator.ArrayConfig
	Boolean  validator.BooleanConfig
	Number   validator.NumberConfig
	Object   validator.ObjectConfig
	String   validator.StringConfig
	Messages messages.Catalog
}

// Set validates submissions against a fixed list of fields. It is immutable
// once built and safe for concurrent use.
type Set struct {
	fields  []Field
	array   validator.ArrayFunc
	boolean validator.BooleanFunc
	number  validator.NumberFunc
	object  validator.ObjectFunc
	str     validator.StringFunc
}

// New builds the validators for cfg once and binds them to fields.
func New(fields []Field, cfg Config) *Set {
	cfg.Array.CustomErrorMessages = cfg.Messages.Merge(cfg.Array.CustomErrorMessages)
	cfg.Boolean.CustomErrorMessages = cfg.Messages.Merge(cfg.Boolean.CustomErrorMessages)
	cfg.Number.CustomErrorMessages = cfg.Messages.Merge(cfg.Number.CustomErrorMessages)
	cfg.Object.CustomErrorMessages = cfg.Messages.Merge(cfg.Object.CustomErrorMessages)
	cfg.String.CustomErrorMessages = cfg.Messages.Merge(cfg.String.CustomErrorMessages)

	return &Set{
		fields:  append([]Field(nil), fields...),
		array:   validator.NewArray(cfg.Array),
		boolean: validator.NewBoolean(cfg.Boolean),
		number:  validator.NewNumber(cfg.Number),
		object:  validator.NewObject(cfg.Object),
		str:     validator.NewString(cfg.String),
	}
}

// Fields returns a copy of the declared fields.
func (s *Set) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Check reports spec-level faults in any declared field.
func (s *Set) Check() error {
	for _, field := range s.fields {
		if err := field.Check(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks values against every declared field. Violations land in
// the report; the error is reserved for malformed specs.
func (s *Set) Validate(values map[string]any) (Report, error) {
	var report Report
	if err := s.walk(s.fields, values, "", &report); err != nil {
		return Report{}, err
	}
	return report, nil
}

// ValidateField checks a single value against field without descending
// into nested fields or items. Values of the wrong shape for an array or
// object field count as absent; boolean fields use truthiness.
func (s *Set) ValidateField(field Field, value any) error {
	switch field.Kind {
	case KindArray:
		items, _ := value.([]any)
		return s.array(field.Array, items)
	case KindBoolean:
		return s.boolean(field.Boolean, truthy(value))
	case KindNumber:
		return s.number(field.Number, value)
	case KindObject:
		object, _ := value.(map[string]any)
		return s.object(field.Object, object)
	case KindString:
		return s.str(field.String, stringValue(value))
	default:
		return fmt.Errorf("%w %q (field %q)", ErrUnknownKind, field.Kind, field.Name)
	}
}

func (s *Set) walk(fields []Field, values map[string]any, prefix string, report *Report) error {
	for _, field := range fields {
		if err := s.visit(field, values[field.Name], joinPath(prefix, field.Name), report); err != nil {
			return err
		}
	}
	return nil
}

func (s *Set) visit(field Field, value any, path string, report *Report) error {
	err := s.ValidateField(field, value)
	if violation, ok := validator.AsViolation(err); ok {
		report.add(path, violation)
	} else if err != nil {
		return fmt.Errorf("fieldset: field %s: %w", path, err)
	}

	switch field.Kind {
	case KindObject:
		if object, ok := value.(map[string]any); ok && len(field.Nested) > 0 {
			return s.walk(field.Nested, object, path, report)
		}
	case KindArray:
		if items, ok := value.([]any); ok && field.Items != nil {
			for i, item := range items {
				if err := s.visit(*field.Items, item, joinPath(path, strconv.Itoa(i)), report); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
