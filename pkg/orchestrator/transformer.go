package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

// Transformer mutates a parsed operation before its field set is built.
type Transformer interface {
	Transform(ctx context.Context, op *pkgopenapi.Operation) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, op *pkgopenapi.Operation) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, op *pkgopenapi.Operation) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, op)
}

// PresetTransformer replaces field specs from a declarative JSON or YAML
// document, keyed by dotted field path. An "items" segment addresses the
// element field of an array:
//
//	fields:
//	  name:
//	    string: {required: true, maxLength: 40}
//	  tags.items:
//	    string: {maxLength: 8}
//
// Each spec given replaces the field's spec of that kind wholesale.
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Fields map[string]fieldPatch `json:"fields" yaml:"fields"`
}

type fieldPatch struct {
	Array   *validator.ArraySpec   `json:"array" yaml:"array"`
	Boolean *validator.BooleanSpec `json:"boolean" yaml:"boolean"`
	Number  *validator.NumberSpec  `json:"number" yaml:"number"`
	Object  *validator.ObjectSpec  `json:"object" yaml:"object"`
	String  *validator.StringSpec  `json:"string" yaml:"string"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}

	var document presetDocument
	if jsonErr := json.Unmarshal(trimmed, &document); jsonErr != nil {
		document = presetDocument{}
		if yamlErr := yaml.Unmarshal(trimmed, &document); yamlErr != nil {
			return nil, fmt.Errorf("preset transformer: parse document: %w", errors.Join(jsonErr, yamlErr))
		}
	}
	for path, patch := range document.Fields {
		if patch.String == nil {
			continue
		}
		if err := patch.String.Check(); err != nil {
			return nil, fmt.Errorf("preset transformer: field %q: %w", path, err)
		}
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches onto op.
func (t *PresetTransformer) Transform(ctx context.Context, op *pkgopenapi.Operation) error {
	if op == nil {
		return errors.New("preset transformer: operation is nil")
	}
	for path, patch := range t.document.Fields {
		if err := ctx.Err(); err != nil {
			return err
		}
		field := findFieldByPath(op.Fields, path)
		if field == nil {
			return fmt.Errorf("preset transformer: field %q not found", path)
		}
		applyFieldPatch(field, patch)
	}
	return nil
}

func applyFieldPatch(field *fieldset.Field, patch fieldPatch) {
	if patch.Array != nil {
		field.Array = *patch.Array
	}
	if patch.Boolean != nil {
		field.Boolean = *patch.Boolean
	}
	if patch.Number != nil {
		field.Number = *patch.Number
	}
	if patch.Object != nil {
		field.Object = *patch.Object
	}
	if patch.String != nil {
		field.String = *patch.String
	}
}

func findFieldByPath(fields []fieldset.Field, path string) *fieldset.Field {
	segments := strings.Split(strings.TrimSpace(path), ".")
	if len(segments) == 0 || segments[0] == "" {
		return nil
	}
	return walkFieldsByPath(fields, segments)
}

func walkFieldsByPath(fields []fieldset.Field, segments []string) *fieldset.Field {
	for i := range fields {
		if fields[i].Name != segments[0] {
			continue
		}
		return descend(&fields[i], segments[1:])
	}
	return nil
}

func descend(field *fieldset.Field, segments []string) *fieldset.Field {
	if len(segments) == 0 {
		return field
	}
	if segments[0] == "items" && field.Items != nil {
		return descend(field.Items, segments[1:])
	}
	return walkFieldsByPath(field.Nested, segments)
}
