package orchestrator_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
	"github.com/goliatone/go-fieldcheck/pkg/orchestrator"
	"github.com/goliatone/go-fieldcheck/pkg/testsupport"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

func sampleOperation() pkgopenapi.Operation {
	return pkgopenapi.Operation{
		ID: "createPet",
		Fields: []fieldset.Field{
			{Name: "name", Kind: fieldset.KindString, String: validator.StringSpec{MaxLength: validator.Len(20)}},
			{
				Name:  "tags",
				Kind:  fieldset.KindArray,
				Items: &fieldset.Field{Kind: fieldset.KindString},
			},
			{
				Name:   "owner",
				Kind:   fieldset.KindObject,
				Nested: []fieldset.Field{{Name: "email", Kind: fieldset.KindString}},
			},
		},
	}
}

func TestPresetTransformerYAML(t *testing.T) {
	preset, err := orchestrator.NewPresetTransformer([]byte(`
fields:
  name:
    string: {required: true, maxLength: 8}
  tags.items:
    string: {maxLength: 4}
  owner.email:
    string: {required: true, pattern: "@"}
`))
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}

	op := sampleOperation()
	if err := preset.Transform(testsupport.Context(), &op); err != nil {
		t.Fatalf("transform: %v", err)
	}

	name, _ := op.Field("name")
	if !name.String.Required || *name.String.MaxLength != 8 {
		t.Fatalf("unexpected name spec: %+v", name.String)
	}
	tags, _ := op.Field("tags")
	if tags.Items.String.MaxLength == nil || *tags.Items.String.MaxLength != 4 {
		t.Fatalf("unexpected tag item spec: %+v", tags.Items.String)
	}
	owner, _ := op.Field("owner")
	if owner.Nested[0].String.Pattern != "@" {
		t.Fatalf("unexpected email spec: %+v", owner.Nested[0].String)
	}
}

func TestPresetTransformerJSONFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"presets/pet.json": &fstest.MapFile{Data: []byte(`{"fields": {"owner": {"object": {"required": true}}}}`)},
	}
	preset, err := orchestrator.NewPresetTransformerFromFS(fsys, "presets/pet.json")
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}

	op := sampleOperation()
	if err := preset.Transform(testsupport.Context(), &op); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if owner, _ := op.Field("owner"); !owner.Object.Required {
		t.Fatalf("expected owner to become required")
	}
}

func TestPresetTransformerErrors(t *testing.T) {
	if _, err := orchestrator.NewPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := orchestrator.NewPresetTransformer([]byte("fields: [")); err == nil {
		t.Fatalf("expected error for malformed document")
	}
	if _, err := orchestrator.NewPresetTransformer([]byte(`{"fields": {"name": {"string": {"pattern": "(["}}}}`)); !errors.Is(err, validator.ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
	if _, err := orchestrator.NewPresetTransformerFromFS(nil, "x.json"); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}

	preset, err := orchestrator.NewPresetTransformer([]byte(`{"fields": {"owner.phone": {"string": {"required": true}}}}`))
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}
	op := sampleOperation()
	if err := preset.Transform(testsupport.Context(), &op); err == nil {
		t.Fatalf("expected error for an unknown field path")
	}
}
