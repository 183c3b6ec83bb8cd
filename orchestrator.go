// Package fieldcheck validates form and request-body values against
// OpenAPI-shaped field constraints. The root package exposes the one-call
// entry points; the validators themselves live in pkg/validator and the
// per-field dispatch in pkg/fieldset.
package fieldcheck

import (
	"context"

	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
	"github.com/goliatone/go-fieldcheck/pkg/orchestrator"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Transformer aliases orchestrator.Transformer.
type Transformer = orchestrator.Transformer

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Validate loads the OpenAPI source, resolves the operation and checks
// values against its request body fields.
func Validate(ctx context.Context, source pkgopenapi.Source, operationID string, values map[string]any, options ...orchestrator.Option) (fieldset.Report, error) {
	return orchestrator.New(options...).Validate(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
	}, values)
}

// ValidateDocument is Validate for a pre-loaded document.
func ValidateDocument(ctx context.Context, doc pkgopenapi.Document, operationID string, values map[string]any, options ...orchestrator.Option) (fieldset.Report, error) {
	return orchestrator.New(options...).Validate(ctx, orchestrator.Request{
		Document:    &doc,
		OperationID: operationID,
	}, values)
}

// WithConfig forwards a validator configuration to the orchestrator.
func WithConfig(cfg fieldset.Config) orchestrator.Option {
	return orchestrator.WithConfig(cfg)
}

// WithLoader forwards a custom loader to the orchestrator.
func WithLoader(loader pkgopenapi.Loader) orchestrator.Option {
	return orchestrator.WithLoader(loader)
}

// WithTransformers forwards operation transformers to the orchestrator.
func WithTransformers(transformers ...Transformer) orchestrator.Option {
	return orchestrator.WithTransformers(transformers...)
}
