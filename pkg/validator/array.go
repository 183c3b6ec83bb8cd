package validator

import "github.com/goliatone/go-fieldcheck/pkg/messages"

// ArrayConfig configures NewArray. The zero value enables every check.
type ArrayConfig struct {
	IgnoreRequiredCheck  bool
	IgnoreMaxLengthCheck bool
	IgnoreMinLengthCheck bool
	CustomErrorMessages  messages.Catalog
}

// ArrayFunc validates value against spec. A nil value is absent.
type ArrayFunc func(spec ArraySpec, value []any) error

// NewArray returns an array validator. Checks, in order:
//
//  1. REQUIRED when spec.Required and value is nil. An empty non-nil slice
//     is present.
//  2. maxLengthArr(bound) when len(value) exceeds spec.MaxLength.
//  3. minLengthArr(bound) when len(value) is below spec.MinLength; a nil
//     value has length zero.
//
// Negative bounds are treated as unset.
func NewArray(cfg ArrayConfig) ArrayFunc {
	catalog := catalogFor(cfg.CustomErrorMessages)

	return func(spec ArraySpec, value []any) error {
		length := float64(len(value))
		maxLength, hasMax := lengthBound(spec.MaxLength)
		minLength, hasMin := lengthBound(spec.MinLength)

		return firstViolation(catalog, []check{
			{
				skip:  cfg.IgnoreRequiredCheck || !spec.Required,
				fails: func() bool { return value == nil },
				key:   messages.KeyRequired,
			},
			{
				skip:  cfg.IgnoreMaxLengthCheck || !hasMax,
				fails: func() bool { return length > maxLength },
				key:   messages.KeyMaxLengthArr,
				bound: maxLength,
			},
			{
				skip:  cfg.IgnoreMinLengthCheck || !hasMin,
				fails: func() bool { return length < minLength },
				key:   messages.KeyMinLengthArr,
				bound: minLength,
			},
		})
	}
}
