package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// DefaultMaxDocumentBytes caps remote documents when LoaderOptions leaves
// MaxDocumentBytes unset.
const DefaultMaxDocumentBytes int64 = 8 << 20

// Loader fetches OpenAPI documents from files, an fs.FS or HTTP.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources. Loading is
// offline unless HTTP is enabled explicitly.
type LoaderOptions struct {
	// FileSystem serves SourceKindFS sources. Nil disables them.
	FileSystem fs.FS

	// HTTPClient fetches SourceKindURL sources. It is copied, and
	// RequestTimeout fills its Timeout when that is zero.
	HTTPClient *http.Client

	// AllowHTTPFallback builds a plain client when HTTPClient is nil.
	AllowHTTPFallback bool

	// RequestTimeout bounds each remote fetch. Zero means no bound beyond
	// the caller's context.
	RequestTimeout time.Duration

	// MaxDocumentBytes caps remote payloads; zero selects
	// DefaultMaxDocumentBytes.
	MaxDocumentBytes int64
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceFromFS paths.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient enables URL sources through client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables URL sources with a default client bounded by
// timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithDefaultSources enables URL sources with a default client unless a
// client or fallback was already configured.
func WithDefaultSources() LoaderOption {
	return func(opts *LoaderOptions) {
		if !opts.AllowHTTPFallback && opts.HTTPClient == nil {
			opts.AllowHTTPFallback = true
		}
	}
}

// WithMaxDocumentBytes overrides DefaultMaxDocumentBytes.
func WithMaxDocumentBytes(n int64) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.MaxDocumentBytes = n
	}
}

// NewLoaderOptions applies options and returns the resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
