package parser

import (
	"fmt"
	"math"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

// objectFields converts the properties of src. active holds the object
// schemas on the current descent; a property that points back at one of
// them becomes a plain object field so recursive schemas terminate.
func (p *Parser) objectFields(src *openapi3.Schema, path string, active map[*openapi3.Schema]bool) ([]fieldset.Field, error) {
	if len(src.Properties) == 0 {
		return nil, nil
	}
	active[src] = true
	defer delete(active, src)

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	fields := make([]fieldset.Field, 0, len(src.Properties))
	for _, name := range sortedKeys(src.Properties) {
		field, err := p.convert(name, src.Properties[name], required[name], joinPath(path, name), active)
		if err != nil {
			return nil, err
		}
		if field.Kind == "" {
			continue
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (p *Parser) convert(name string, ref *openapi3.SchemaRef, required bool, path string, active map[*openapi3.Schema]bool) (fieldset.Field, error) {
	if ref == nil || ref.Value == nil {
		target := ""
		if ref != nil {
			target = ref.Ref
		}
		return fieldset.Field{}, fmt.Errorf("%w: property %s has unresolved reference %q", pkgopenapi.ErrUnsupportedSchema, path, target)
	}
	src := ref.Value

	kind, err := kindOf(src)
	if err != nil {
		return fieldset.Field{}, fmt.Errorf("property %s: %w", path, err)
	}
	if kind == "" {
		// free-form schema
		return fieldset.Field{}, nil
	}

	field := fieldset.Field{Name: name, Kind: kind}
	switch kind {
	case fieldset.KindString:
		field.String = validator.StringSpec{
			Required:     required,
			MaxLength:    maxBound(src.MaxLength),
			MinLength:    minBound(src.MinLength),
			Pattern:      src.Pattern,
			PatternError: p.patternError(src),
		}
		if err := field.String.Check(); err != nil {
			return fieldset.Field{}, fmt.Errorf("property %s: %w", path, err)
		}
	case fieldset.KindNumber:
		field.Number = validator.NumberSpec{
			Required: required,
			Maximum:  cloneFloat(src.Max),
			Minimum:  cloneFloat(src.Min),
			Format:   src.Format,
		}
		if src.Type.Is(openapi3.TypeInteger) {
			field.Number.Format = validator.FormatInt64
		}
	case fieldset.KindBoolean:
		field.Boolean = validator.BooleanSpec{Required: required}
	case fieldset.KindArray:
		field.Array = validator.ArraySpec{
			Required:  required,
			MaxLength: maxBound(src.MaxItems),
			MinLength: minBound(src.MinItems),
		}
		if src.Items != nil {
			items, err := p.convert("", src.Items, false, joinPath(path, "items"), active)
			if err != nil {
				return fieldset.Field{}, err
			}
			if items.Kind != "" {
				field.Items = &items
			}
		}
	case fieldset.KindObject:
		field.Object = validator.ObjectSpec{Required: required}
		if !active[src] {
			nested, err := p.objectFields(src, path, active)
			if err != nil {
				return fieldset.Field{}, err
			}
			field.Nested = nested
		}
	}
	return field, nil
}

func kindOf(src *openapi3.Schema) (fieldset.Kind, error) {
	var types []string
	if src.Type != nil {
		for _, typ := range src.Type.Slice() {
			if typ != openapi3.TypeNull {
				types = append(types, typ)
			}
		}
	}

	switch len(types) {
	case 0:
		switch {
		case len(src.Properties) > 0:
			return fieldset.KindObject, nil
		case src.Items != nil:
			return fieldset.KindArray, nil
		}
		return "", nil
	case 1:
	default:
		return "", fmt.Errorf("%w: ambiguous type %v", pkgopenapi.ErrUnsupportedSchema, types)
	}

	switch types[0] {
	case openapi3.TypeString:
		return fieldset.KindString, nil
	case openapi3.TypeInteger, openapi3.TypeNumber:
		return fieldset.KindNumber, nil
	case openapi3.TypeBoolean:
		return fieldset.KindBoolean, nil
	case openapi3.TypeArray:
		return fieldset.KindArray, nil
	case openapi3.TypeObject:
		return fieldset.KindObject, nil
	default:
		return "", fmt.Errorf("%w: type %q", pkgopenapi.ErrUnsupportedSchema, types[0])
	}
}

func (p *Parser) patternError(src *openapi3.Schema) string {
	if src.Extensions == nil {
		return ""
	}
	if text, ok := src.Extensions[p.options.PatternErrorExtension].(string); ok {
		return text
	}
	return ""
}

// minBound maps an OpenAPI lower length bound, where 0 means unset.
func minBound(n uint64) *int {
	if n == 0 {
		return nil
	}
	return validator.Len(clampInt(n))
}

func maxBound(n *uint64) *int {
	if n == nil {
		return nil
	}
	return validator.Len(clampInt(*n))
}

func clampInt(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	return validator.Num(*f)
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
