package testsupport

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
)

// PetstoreName is the file name of the bundled petstore fixture.
const PetstoreName = "petstore.yaml"

//go:embed testdata/petstore.yaml
var petstore []byte

// Petstore returns the raw bundled petstore document.
func Petstore() []byte {
	return append([]byte(nil), petstore...)
}

// PetstoreFS returns an fs.FS serving the petstore fixture as PetstoreName.
func PetstoreFS() fstest.MapFS {
	return fstest.MapFS{
		PetstoreName: &fstest.MapFile{Data: Petstore()},
	}
}

// PetstoreDocument wraps the petstore fixture in a Document with an fs source.
func PetstoreDocument() pkgopenapi.Document {
	return pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS(PetstoreName), Petstore())
}

// WritePetstore copies the petstore fixture into a temp dir and returns its path.
func WritePetstore(t *testing.T) string {
	t.Helper()
	return WriteFile(t, PetstoreName, Petstore())
}

// WriteFile writes data under a per-test temp dir and returns the path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// InlineDocument wraps raw in a Document named name. Failures abort the test.
func InlineDocument(t *testing.T, name, raw string) pkgopenapi.Document {
	t.Helper()

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFS(name), []byte(raw))
	if err != nil {
		t.Fatalf("inline document: %v", err)
	}
	return doc
}

// LoadDocument reads a fixture and builds an openapi.Document using a file
// source.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// DecodeValues unmarshals a JSON object the way a request body decoder would.
func DecodeValues(t *testing.T, raw string) map[string]any {
	t.Helper()

	var values map[string]any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		t.Fatalf("decode values: %v", err)
	}
	return values
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
