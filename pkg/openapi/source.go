package openapi

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// fileSource is a document on local disk; Location is the cleaned path.
type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source for a document on local disk.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource names an entry of the fs.FS given to the loader through
// WithFileSystem. Names use forward slashes and are not cleaned.
type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }

func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source for an entry of the loader's fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource is a document served over HTTP(S). Loaders only fetch it when
// HTTP was enabled with WithHTTPClient, WithHTTPFallback or
// WithDefaultSources.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }

func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL validates raw as an absolute http or https URL and returns
// a Source for it.
func SourceFromURL(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty URL", ErrInvalidSource)
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSource, raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidSource, raw)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidSource, raw)
	}
	return urlSource{raw: raw}, nil
}

// ParseSource picks the Source for a user-supplied location: http(s) URLs
// become URL sources, anything else a file path.
func ParseSource(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", ErrInvalidSource)
	}
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return SourceFromURL(location)
	}
	return SourceFromFile(location), nil
}
