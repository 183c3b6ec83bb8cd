package orchestrator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldcheck/internal/openapi/loader"
	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	"github.com/goliatone/go-fieldcheck/pkg/messages"
	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
	"github.com/goliatone/go-fieldcheck/pkg/orchestrator"
	"github.com/goliatone/go-fieldcheck/pkg/testsupport"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

func createPet() orchestrator.Request {
	return orchestrator.Request{
		Source:      pkgopenapi.SourceFromFS(testsupport.PetstoreName),
		OperationID: "createPet",
	}
}

func petstoreOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	fsLoader := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(testsupport.PetstoreFS())))
	return orchestrator.New(append([]orchestrator.Option{orchestrator.WithLoader(fsLoader)}, options...)...)
}

func TestValidateCreatePet(t *testing.T) {
	gen := petstoreOrchestrator()

	report, err := gen.Validate(testsupport.Context(), createPet(), testsupport.DecodeValues(t, `{
		"name": "Rex",
		"age": 3,
		"vaccinated": true,
		"owner": {"email": "ana@example.com", "phone": "5551234"},
		"tags": ["good", "dog"]
	}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !report.Valid() {
		t.Fatalf("expected a valid submission, got %v", report)
	}

	report, err = gen.Validate(testsupport.Context(), createPet(), testsupport.DecodeValues(t, `{
		"name": "R2-D2",
		"age": 3.5,
		"weight": "0.25",
		"owner": {"email": "nobody", "phone": "123"},
		"tags": ["a", "b", "c", "d"]
	}`))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	defaults := messages.Defaults()
	want := map[string][]string{
		"name":        {"Use letters and spaces only"},
		"age":         {defaults.Format(messages.KeyInt, 0)},
		"weight":      {defaults.Format(messages.KeyMinNumber, 0.5)},
		"vaccinated":  {defaults.Format(messages.KeyRequired, 0)},
		"owner.email": {defaults.Format(messages.KeyInvalid, 0)},
		"owner.phone": {defaults.Format(messages.KeyMinLength, 7)},
		"tags":        {defaults.Format(messages.KeyMaxLengthArr, 3)},
	}
	if diff := cmp.Diff(want, report.Payload()); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateUsesConfiguredMessages(t *testing.T) {
	gen := petstoreOrchestrator(orchestrator.WithConfig(fieldset.Config{
		Messages: messages.Catalog{Required: messages.Text("Missing")},
	}))

	report, err := gen.Validate(testsupport.Context(), createPet(), map[string]any{})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	for _, path := range []string{"age", "name", "owner", "vaccinated"} {
		if got := report.Message(path); got != "Missing" {
			t.Fatalf("expected custom REQUIRED for %s, got %q", path, got)
		}
	}
}

func TestOperationWithDocument(t *testing.T) {
	doc := testsupport.PetstoreDocument()
	gen := orchestrator.New()

	op, err := gen.Operation(testsupport.Context(), orchestrator.Request{Document: &doc, OperationID: "createPet"})
	if err != nil {
		t.Fatalf("operation: %v", err)
	}
	if op.Method != "POST" || len(op.Fields) != 6 {
		t.Fatalf("unexpected operation %s with %d fields", op.Method, len(op.Fields))
	}
}

func TestOperationErrors(t *testing.T) {
	gen := petstoreOrchestrator()
	ctx := testsupport.Context()

	if _, err := gen.Operation(ctx, orchestrator.Request{Source: pkgopenapi.SourceFromFS(testsupport.PetstoreName)}); err == nil {
		t.Fatalf("expected error for missing operation id")
	}
	if _, err := gen.Operation(ctx, orchestrator.Request{OperationID: "createPet"}); err == nil {
		t.Fatalf("expected error for missing source and document")
	}
	missing := createPet()
	missing.OperationID = "deletePet"
	if _, err := gen.Operation(ctx, missing); !errors.Is(err, pkgopenapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := gen.Operation(cancelled, createPet()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTransformersRunBeforeFieldSet(t *testing.T) {
	calls := 0
	gen := petstoreOrchestrator(orchestrator.WithTransformers(
		orchestrator.TransformerFunc(func(_ context.Context, op *pkgopenapi.Operation) error {
			calls++
			op.Fields = append(op.Fields, fieldset.Field{
				Name:   "nickname",
				Kind:   fieldset.KindString,
				String: validator.StringSpec{Required: true},
			})
			return nil
		}),
		nil,
	))

	report, err := gen.Validate(testsupport.Context(), createPet(), map[string]any{})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected transformer to run once, ran %d times", calls)
	}
	if report.Message("nickname") == "" {
		t.Fatalf("expected the injected field to be validated")
	}

	failing := petstoreOrchestrator(orchestrator.WithTransformers(
		orchestrator.TransformerFunc(func(context.Context, *pkgopenapi.Operation) error {
			return errors.New("boom")
		}),
	))
	if _, err := failing.Validate(testsupport.Context(), createPet(), nil); err == nil {
		t.Fatalf("expected transformer error to surface")
	}
}

func TestFieldSetRejectsMalformedSpecs(t *testing.T) {
	gen := petstoreOrchestrator(orchestrator.WithTransformers(
		orchestrator.TransformerFunc(func(_ context.Context, op *pkgopenapi.Operation) error {
			op.Fields[0].Kind = "date"
			return nil
		}),
	))
	if _, err := gen.FieldSet(testsupport.Context(), createPet()); !errors.Is(err, fieldset.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestEndpointsResolveEveryOperation(t *testing.T) {
	calls := 0
	gen := petstoreOrchestrator(orchestrator.WithTransformers(
		orchestrator.TransformerFunc(func(context.Context, *pkgopenapi.Operation) error {
			calls++
			return nil
		}),
	))

	endpoints, err := gen.Endpoints(testsupport.Context(), orchestrator.Request{
		Source: pkgopenapi.SourceFromFS(testsupport.PetstoreName),
	})
	if err != nil {
		t.Fatalf("endpoints: %v", err)
	}

	got := make(map[string]int, len(endpoints))
	for id, endpoint := range endpoints {
		if endpoint.Set == nil {
			t.Fatalf("expected a field set for %s", id)
		}
		got[id] = len(endpoint.Set.Fields())
	}
	want := map[string]int{
		"createPet":               6,
		"listPets":                0,
		"put:/pets/{petId}/owner": 2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("endpoint mismatch (-want +got):\n%s", diff)
	}
	if calls != len(want) {
		t.Fatalf("expected transformers to run once per operation, ran %d times", calls)
	}

	report, err := endpoints["put:/pets/{petId}/owner"].Set.Validate(map[string]any{"email": "nobody"})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if report.Message("email") == "" {
		t.Fatalf("expected the owner email to fail its pattern")
	}
}

func TestEndpointsSurfaceMalformedSpecs(t *testing.T) {
	gen := petstoreOrchestrator(orchestrator.WithTransformers(
		orchestrator.TransformerFunc(func(_ context.Context, op *pkgopenapi.Operation) error {
			for i := range op.Fields {
				if op.Fields[i].Name == "name" {
					op.Fields[i].String.Pattern = "("
				}
			}
			return nil
		}),
	))
	_, err := gen.Endpoints(testsupport.Context(), orchestrator.Request{
		Source: pkgopenapi.SourceFromFS(testsupport.PetstoreName),
	})
	if !errors.Is(err, validator.ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}
