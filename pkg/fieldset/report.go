package fieldset

import (
	"sort"
	"strings"

	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

// Report collects the first violation of every failing field, keyed by
// dotted path.
type Report struct {
	Fields map[string]*validator.Violation `json:"fields,omitempty"`
}

// Valid reports whether no field failed.
func (r Report) Valid() bool {
	return len(r.Fields) == 0
}

// Paths returns the failing paths in lexical order.
func (r Report) Paths() []string {
	paths := make([]string, 0, len(r.Fields))
	for path := range r.Fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Message returns the descriptor reported for path, or "".
func (r Report) Message(path string) string {
	if violation, ok := r.Fields[path]; ok && violation != nil {
		return violation.Message
	}
	return ""
}

// Payload renders the report as a field -> messages map, the shape error
// payloads use on the wire.
func (r Report) Payload() map[string][]string {
	if r.Valid() {
		return nil
	}
	out := make(map[string][]string, len(r.Fields))
	for path, violation := range r.Fields {
		out[path] = []string{violation.Message}
	}
	return out
}

// Error summarises the report; Report satisfies error so callers can
// return it directly (see Err).
func (r Report) Error() string {
	if r.Valid() {
		return "validation failed"
	}
	parts := make([]string, 0, len(r.Fields))
	for _, path := range r.Paths() {
		parts = append(parts, path+": "+r.Fields[path].Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap links the report to validator.ErrValidation.
func (r Report) Unwrap() error {
	return validator.ErrValidation
}

// Err returns the report as an error, or nil when it is valid.
func (r Report) Err() error {
	if r.Valid() {
		return nil
	}
	return r
}

func (r *Report) add(path string, violation *validator.Violation) {
	if r.Fields == nil {
		r.Fields = make(map[string]*validator.Violation)
	}
	r.Fields[path] = violation
}

func joinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
