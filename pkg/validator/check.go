package validator

import (
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-fieldcheck/pkg/messages"
)

// check pairs a predicate with the catalog entry reported when it fails.
// Validators build an ordered slice of checks and stop at the first failure.
type check struct {
	skip  bool
	fails func() bool
	key   messages.Key
	bound float64
	// text replaces the catalog entry when non-empty.
	text string
}

func firstViolation(catalog messages.Catalog, checks []check) error {
	for _, c := range checks {
		if c.skip || !c.fails() {
			continue
		}
		message := c.text
		if message == "" {
			message = catalog.Format(c.key, c.bound)
		}
		return &Violation{Key: c.key, Message: message}
	}
	return nil
}

func catalogFor(custom messages.Catalog) messages.Catalog {
	return messages.Defaults().Merge(custom)
}

// lengthBound reports whether a length bound is set and usable.
func lengthBound(bound *int) (float64, bool) {
	if bound == nil || *bound < 0 {
		return 0, false
	}
	return float64(*bound), true
}

func numberBound(bound *float64) float64 {
	if bound == nil {
		return 0
	}
	return *bound
}

func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && isSpace(r)
}

func endsWithSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && isSpace(r)
}

// isSpace matches the whitespace class browsers apply to form input,
// which also counts the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
