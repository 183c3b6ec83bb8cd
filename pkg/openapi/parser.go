package openapi

import "context"

// Parser normalises OpenAPI documents into operations keyed by operation id.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// ResolveReferences makes the parser follow external $ref pointers and
	// validate the document. Defaults to true.
	ResolveReferences bool

	// AllowPartialDocuments accepts documents without paths or operations.
	// Defaults to false.
	AllowPartialDocuments bool

	// PatternErrorExtension names the schema extension holding the message
	// shown when a string pattern does not match. Defaults to
	// DefaultPatternErrorExtension.
	PatternErrorExtension string
}

// DefaultPatternErrorExtension is the schema extension read for pattern
// error messages.
const DefaultPatternErrorExtension = "x-pattern-error"

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles reference resolution and validation.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithPartialDocuments toggles support for documents without operations.
func WithPartialDocuments(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// WithPatternErrorExtension changes the extension read for pattern errors.
func WithPatternErrorExtension(name string) ParserOption {
	return func(opts *ParserOptions) {
		if name != "" {
			opts.PatternErrorExtension = name
		}
	}
}

// NewParserOptions applies options over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		ResolveReferences:     true,
		PatternErrorExtension: DefaultPatternErrorExtension,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
