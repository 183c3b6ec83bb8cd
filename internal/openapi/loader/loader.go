package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
)

// Loader implements pkgopenapi.Loader over local files, an fs.FS and, when
// enabled, HTTP. Construction helpers live in the root fieldcheck package.
type Loader struct {
	fs       fs.FS
	http     *http.Client
	timeout  time.Duration
	maxBytes int64
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. URL sources stay
// disabled unless the options carry a client or allow the fallback.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	timeout := options.RequestTimeout

	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		client = &clone
	case options.AllowHTTPFallback:
		client = &http.Client{Timeout: timeout}
	}

	maxBytes := options.MaxDocumentBytes
	if maxBytes <= 0 {
		maxBytes = pkgopenapi.DefaultMaxDocumentBytes
	}

	return &Loader{
		fs:       options.FileSystem,
		http:     client,
		timeout:  timeout,
		maxBytes: maxBytes,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgopenapi.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgopenapi.SourceKindURL:
		if l.http == nil {
			return pkgopenapi.Document{}, fmt.Errorf("openapi loader: http sources are disabled (%s)", src.Location())
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgopenapi.Document{}, err
	}

	return pkgopenapi.NewDocument(src, data)
}
