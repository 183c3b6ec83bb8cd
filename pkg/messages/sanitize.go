package messages

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeTemplate strips any markup from a file-sourced template and
// returns plain text. Entities escaped by the policy are decoded again so
// apostrophes and ampersands survive.
func sanitizeTemplate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := html.UnescapeString(textSanitizer().Sanitize(trimmed))
	return strings.TrimSpace(cleaned)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
