package validator

import (
	"regexp"
	"unicode/utf8"

	"github.com/goliatone/go-fieldcheck/pkg/messages"
)

// StringConfig configures NewString. The zero value enables every check.
type StringConfig struct {
	IgnoreRequiredCheck   bool
	IgnoreSpaceStartCheck bool
	IgnoreSpaceEndCheck   bool
	IgnoreMaxLengthCheck  bool
	IgnoreMinLengthCheck  bool
	IgnoreRegExpCheck     bool
	CustomErrorMessages   messages.Catalog
}

// StringFunc validates value against spec. The empty string is absent.
type StringFunc func(spec StringSpec, value string) error

// NewString returns a string validator. Lengths count characters (runes).
// Checks, in order:
//
//  1. REQUIRED when spec.Required and value is empty.
//  2. SPACE_START / SPACE_END when a non-empty value starts / ends with
//     whitespace.
//  3. maxLength(bound) when the length exceeds spec.MaxLength.
//  4. minLength(bound) when the length is below spec.MinLength. This also
//     applies to an empty optional value.
//  5. spec.PatternError, or INVALID when it is empty, when spec.Pattern is
//     set and does not match the raw value (empty values included).
//
// An uncompilable pattern returns an error wrapping ErrInvalidPattern
// before any check runs.
func NewString(cfg StringConfig) StringFunc {
	catalog := catalogFor(cfg.CustomErrorMessages)

	return func(spec StringSpec, value string) error {
		var pattern *regexp.Regexp
		if spec.Pattern != "" {
			compiled, err := CompilePattern(spec.Pattern)
			if err != nil {
				return err
			}
			pattern = compiled
		}

		length := float64(utf8.RuneCountInString(value))
		nonEmpty := value != ""
		maxLength, hasMax := lengthBound(spec.MaxLength)
		minLength, hasMin := lengthBound(spec.MinLength)

		return firstViolation(catalog, []check{
			{
				skip:  cfg.IgnoreRequiredCheck || !spec.Required,
				fails: func() bool { return !nonEmpty },
				key:   messages.KeyRequired,
			},
			{
				skip:  cfg.IgnoreSpaceStartCheck || !nonEmpty,
				fails: func() bool { return startsWithSpace(value) },
				key:   messages.KeySpaceStart,
			},
			{
				skip:  cfg.IgnoreSpaceEndCheck || !nonEmpty,
				fails: func() bool { return endsWithSpace(value) },
				key:   messages.KeySpaceEnd,
			},
			{
				skip:  cfg.IgnoreMaxLengthCheck || !hasMax,
				fails: func() bool { return length > maxLength },
				key:   messages.KeyMaxLength,
				bound: maxLength,
			},
			{
				skip:  cfg.IgnoreMinLengthCheck || !hasMin,
				fails: func() bool { return length < minLength },
				key:   messages.KeyMinLength,
				bound: minLength,
			},
			{
				skip:  cfg.IgnoreRegExpCheck || pattern == nil,
				fails: func() bool { return !pattern.MatchString(value) },
				key:   messages.KeyInvalid,
				text:  spec.PatternError,
			},
		})
	}
}
