package messages_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-fieldcheck/pkg/messages"
)

func TestParseYAMLOverrides(t *testing.T) {
	const doc = `
REQUIRED: Fill this in
maxLength: "No more than {bound} characters"
`
	catalog, err := messages.Parse([]byte(doc), "overrides.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := catalog.Format(messages.KeyRequired, 0); got != "Fill this in" {
		t.Fatalf("expected REQUIRED override, got %q", got)
	}
	if got := catalog.Format(messages.KeyMaxLength, 12); got != "No more than 12 characters" {
		t.Fatalf("expected bounded override, got %q", got)
	}
	if catalog.MinLength != nil {
		t.Fatalf("expected keys absent from the document to stay unset")
	}
}

func TestParseJSONOverrides(t *testing.T) {
	catalog, err := messages.Parse([]byte(`{"INVALID": "Wrong format", "minNumber": "At least {bound}"}`), "overrides.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := catalog.Format(messages.KeyInvalid, 0); got != "Wrong format" {
		t.Fatalf("expected INVALID override, got %q", got)
	}
	if got := catalog.Format(messages.KeyMinNumber, 0.5); got != "At least 0.5" {
		t.Fatalf("expected minNumber override, got %q", got)
	}
}

func TestParseLiteralKeysKeepPlaceholder(t *testing.T) {
	catalog, err := messages.Parse([]byte(`INT: "Whole numbers {bound}"`), "overrides.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := catalog.Format(messages.KeyInt, 9); got != "Whole numbers {bound}" {
		t.Fatalf("expected literal template untouched, got %q", got)
	}
}

func TestParseStripsMarkup(t *testing.T) {
	catalog, err := messages.Parse([]byte(`REQUIRED: "<b>Don't</b> skip <script>alert(1)</script>this & that"`), "overrides.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := catalog.Format(messages.KeyRequired, 0); got != "Don't skip this & that" {
		t.Fatalf("expected sanitized plain text, got %q", got)
	}
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := messages.Parse([]byte(`REQUIRD: typo`), "overrides.yaml")
	if !errors.Is(err, messages.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestParseRejectsEmptyTemplate(t *testing.T) {
	_, err := messages.Parse([]byte(`{"NUMBER": "<i></i>"}`), "overrides.json")
	if !errors.Is(err, messages.ErrEmptyTemplate) {
		t.Fatalf("expected ErrEmptyTemplate, got %v", err)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	for name, doc := range map[string]string{
		"list":   "- a\n- b\n",
		"nested": "REQUIRED:\n  en: Fill this in\n",
	} {
		if _, err := messages.Parse([]byte(doc), name); !errors.Is(err, messages.ErrInvalidDocument) {
			t.Fatalf("%s: expected ErrInvalidDocument, got %v", name, err)
		}
	}
	if _, err := messages.Parse([]byte("   \n"), "blank.yaml"); err == nil {
		t.Fatalf("expected error for blank document")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"i18n/en.yaml": &fstest.MapFile{Data: []byte("ZERO_START: Drop the leading zero\n")},
	}

	catalog, err := messages.LoadFS(fsys, "i18n/en.yaml")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if got := catalog.Format(messages.KeyZeroStart, 0); got != "Drop the leading zero" {
		t.Fatalf("expected ZERO_START override, got %q", got)
	}

	if _, err := messages.LoadFS(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
