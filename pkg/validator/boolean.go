package validator

import "github.com/goliatone/go-fieldcheck/pkg/messages"

// BooleanConfig configures NewBoolean.
type BooleanConfig struct {
	IgnoreRequiredCheck bool
	CustomErrorMessages messages.Catalog
}

// BooleanFunc validates value against spec.
type BooleanFunc func(spec BooleanSpec, value bool) error

// NewBoolean returns a boolean validator with a single check: REQUIRED when
// spec.Required and value is false. False counts as absent, so a required
// boolean must be affirmed.
func NewBoolean(cfg BooleanConfig) BooleanFunc {
	catalog := catalogFor(cfg.CustomErrorMessages)

	return func(spec BooleanSpec, value bool) error {
		return firstViolation(catalog, []check{
			{
				skip:  cfg.IgnoreRequiredCheck || !spec.Required,
				fails: func() bool { return !value },
				key:   messages.KeyRequired,
			},
		})
	}
}
