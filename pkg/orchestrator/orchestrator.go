package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-fieldcheck/internal/openapi/loader"
	internalParser "github.com/goliatone/go-fieldcheck/internal/openapi/parser"
	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithConfig sets the validator configuration used for every field set.
func WithConfig(cfg fieldset.Config) Option {
	return func(o *Orchestrator) {
		o.config = cfg
	}
}

// WithTransformers registers transformers that run against the parsed
// operation before its field set is built.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		for _, t := range transformers {
			if t != nil {
				o.transformers = append(o.transformers, t)
			}
		}
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to a
// validated submission.
type Orchestrator struct {
	loader       pkgopenapi.Loader
	parser       pkgopenapi.Parser
	config       fieldset.Config
	transformers []Transformer
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies default to the built-in loader and parser.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	return o
}

// Request describes which operation to resolve.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when
	// Document is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader.
	Document *pkgopenapi.Document

	// OperationID selects the operation whose request body is validated.
	OperationID string
}

// Operation loads, parses and transforms the requested operation.
func (o *Orchestrator) Operation(ctx context.Context, req Request) (pkgopenapi.Operation, error) {
	if req.OperationID == "" {
		return pkgopenapi.Operation{}, errors.New("orchestrator: operation id is required")
	}

	operations, err := o.parse(ctx, req)
	if err != nil {
		return pkgopenapi.Operation{}, err
	}

	op, err := pkgopenapi.Lookup(operations, req.OperationID)
	if err != nil {
		return pkgopenapi.Operation{}, fmt.Errorf("orchestrator: %w", err)
	}
	if err := o.transform(ctx, &op); err != nil {
		return pkgopenapi.Operation{}, err
	}
	return op, nil
}

// Endpoint pairs a transformed operation with its field set.
type Endpoint struct {
	Operation pkgopenapi.Operation
	Set       *fieldset.Set
}

// Endpoints resolves every operation of the document in one pass. The
// request's OperationID is ignored.
func (o *Orchestrator) Endpoints(ctx context.Context, req Request) (map[string]Endpoint, error) {
	operations, err := o.parse(ctx, req)
	if err != nil {
		return nil, err
	}

	endpoints := make(map[string]Endpoint, len(operations))
	for _, id := range pkgopenapi.OperationIDs(operations) {
		op := operations[id]
		if err := o.transform(ctx, &op); err != nil {
			return nil, err
		}
		set, err := o.build(op)
		if err != nil {
			return nil, err
		}
		endpoints[id] = Endpoint{Operation: op, Set: set}
	}
	return endpoints, nil
}

// FieldSet builds the field set for the requested operation. Malformed field
// specs are reported here rather than on every Validate call.
func (o *Orchestrator) FieldSet(ctx context.Context, req Request) (*fieldset.Set, error) {
	op, err := o.Operation(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.build(op)
}

// Validate checks values against the request body of the requested
// operation.
func (o *Orchestrator) Validate(ctx context.Context, req Request, values map[string]any) (fieldset.Report, error) {
	set, err := o.FieldSet(ctx, req)
	if err != nil {
		return fieldset.Report{}, err
	}
	return set.Validate(values)
}

func (o *Orchestrator) parse(ctx context.Context, req Request) (map[string]pkgopenapi.Operation, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	return operations, nil
}

func (o *Orchestrator) transform(ctx context.Context, op *pkgopenapi.Operation) error {
	for _, t := range o.transformers {
		if err := t.Transform(ctx, op); err != nil {
			return fmt.Errorf("orchestrator: transform operation %s: %w", op.ID, err)
		}
	}
	return nil
}

func (o *Orchestrator) build(op pkgopenapi.Operation) (*fieldset.Set, error) {
	set := fieldset.New(op.Fields, o.config)
	if err := set.Check(); err != nil {
		return nil, fmt.Errorf("orchestrator: operation %s: %w", op.ID, err)
	}
	return set, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}
