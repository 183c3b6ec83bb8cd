package validator

import "github.com/goliatone/go-fieldcheck/pkg/messages"

// ObjectConfig configures NewObject.
type ObjectConfig struct {
	IgnoreRequiredCheck bool
	CustomErrorMessages messages.Catalog
}

// ObjectFunc validates value against spec. A nil map is absent; an empty
// map is present.
type ObjectFunc func(spec ObjectSpec, value map[string]any) error

// NewObject returns an object validator with a single check: REQUIRED when
// spec.Required and value is nil. Fields of the object are not inspected.
func NewObject(cfg ObjectConfig) ObjectFunc {
	catalog := catalogFor(cfg.CustomErrorMessages)

	return func(spec ObjectSpec, value map[string]any) error {
		return firstViolation(catalog, []check{
			{
				skip:  cfg.IgnoreRequiredCheck || !spec.Required,
				fails: func() bool { return value == nil },
				key:   messages.KeyRequired,
			},
		})
	}
}
