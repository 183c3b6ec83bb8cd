package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	if options.PatternErrorExtension == "" {
		options.PatternErrorExtension = pkgopenapi.DefaultPatternErrorExtension
	}
	return &Parser{options: options}
}

// Operations converts a Document into a map keyed by operationId.
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, fmt.Errorf("openapi parser: %w", pkgopenapi.ErrEmptyDocument)
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return nil, errors.New("openapi parser: document does not contain any paths")
		}
	}

	if p.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	operations := make(map[string]pkgopenapi.Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, operation := range item.Operations() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if err := p.collectOperation(operations, method, path, operation); err != nil {
					return nil, err
				}
			}
		}
	}

	if len(operations) == 0 && !p.options.AllowPartialDocuments {
		return nil, fmt.Errorf("openapi parser: %w", pkgopenapi.ErrNoOperations)
	}

	return operations, nil
}

func (p *Parser) collectOperation(target map[string]pkgopenapi.Operation, method, path string, operation *openapi3.Operation) error {
	if operation == nil {
		return nil
	}
	method = strings.ToUpper(method)
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	fields, err := p.requestFields(operation.RequestBody)
	if err != nil {
		return fmt.Errorf("openapi parser: operation %s: %w", opID, err)
	}

	op, err := pkgopenapi.NewOperation(opID, method, path, fields)
	if err != nil {
		return err
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	target[opID] = op
	return nil
}

var preferredMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

func (p *Parser) requestFields(requestBody *openapi3.RequestBodyRef) ([]fieldset.Field, error) {
	if requestBody == nil || requestBody.Value == nil {
		return nil, nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return p.bodyFields(mt.Schema)
		}
	}
	for _, mediaType := range sortedKeys(content) {
		if mt := content[mediaType]; mt != nil {
			return p.bodyFields(mt.Schema)
		}
	}
	return nil, nil
}

func (p *Parser) bodyFields(ref *openapi3.SchemaRef) ([]fieldset.Field, error) {
	if ref == nil || ref.Value == nil {
		return nil, nil
	}
	return p.objectFields(ref.Value, "", map[*openapi3.Schema]bool{})
}
