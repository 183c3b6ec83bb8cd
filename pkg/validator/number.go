package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-fieldcheck/pkg/messages"
	"github.com/goliatone/go-fieldcheck/pkg/numstr"
)

// NumberConfig configures NewNumber. The zero value enables every check.
type NumberConfig struct {
	IgnoreRequiredCheck   bool
	IgnoreSpaceStartCheck bool
	IgnoreSpaceEndCheck   bool
	IgnoreNumberCheck     bool
	IgnoreMaximumCheck    bool
	IgnoreMinimumCheck    bool
	IgnoreIntCheck        bool
	IgnoreDotEnd          bool
	IgnoreZeroStart       bool
	CustomErrorMessages   messages.Catalog
}

// NumberFunc validates value against spec. value may be nil, any Go integer
// or float kind, json.Number, a string holding user-typed text, or a
// pointer to one of those.
type NumberFunc func(spec NumberSpec, value any) error

// NewNumber returns a number validator. The value is first rendered as
// text (see NumberText) and every lexical check runs on that text; only the
// bound comparisons parse it back to a number. Checks, in order:
//
//  1. REQUIRED when spec.Required and the text is empty or blank.
//  2. For non-empty text: SPACE_START, SPACE_END, DOT_END (trailing "."),
//     NUMBER (not a plain decimal, see numstr.IsFloat), and ZERO_START.
//     ZERO_START fires for text longer than one character that starts with
//     "0" not followed by ".", and for text longer than two characters that
//     starts with "-0" not followed by ".". "0", "-0", "0.5" and "-0.5"
//     pass; "01" and "-02" do not.
//  3. maxNumber(maximum) when the parsed value exceeds spec.Maximum.
//  4. minNumber(minimum) when the parsed value is below spec.Minimum.
//  5. INT when spec.Format is FormatInt64 and the text is not an integer.
//
// Text that does not parse as a number never fails a bound check.
func NewNumber(cfg NumberConfig) NumberFunc {
	catalog := catalogFor(cfg.CustomErrorMessages)

	return func(spec NumberSpec, value any) error {
		text := NumberText(value)
		nonEmpty := text != ""

		return firstViolation(catalog, []check{
			{
				skip:  cfg.IgnoreRequiredCheck || !spec.Required,
				fails: func() bool { return strings.TrimSpace(text) == "" },
				key:   messages.KeyRequired,
			},
			{
				skip:  cfg.IgnoreSpaceStartCheck || !nonEmpty,
				fails: func() bool { return startsWithSpace(text) },
				key:   messages.KeySpaceStart,
			},
			{
				skip:  cfg.IgnoreSpaceEndCheck || !nonEmpty,
				fails: func() bool { return endsWithSpace(text) },
				key:   messages.KeySpaceEnd,
			},
			{
				skip:  cfg.IgnoreDotEnd || !nonEmpty,
				fails: func() bool { return strings.HasSuffix(text, ".") },
				key:   messages.KeyDotEnd,
			},
			{
				skip:  cfg.IgnoreNumberCheck || !nonEmpty,
				fails: func() bool { return !numstr.IsFloat(text) },
				key:   messages.KeyNumber,
			},
			{
				skip:  cfg.IgnoreZeroStart || !nonEmpty,
				fails: func() bool { return hasZeroStart(text) },
				key:   messages.KeyZeroStart,
			},
			{
				skip: cfg.IgnoreMaximumCheck || spec.Maximum == nil || !nonEmpty,
				fails: func() bool {
					n, ok := parseNumber(text)
					return ok && n > *spec.Maximum
				},
				key:   messages.KeyMaxNumber,
				bound: numberBound(spec.Maximum),
			},
			{
				skip: cfg.IgnoreMinimumCheck || spec.Minimum == nil || !nonEmpty,
				fails: func() bool {
					n, ok := parseNumber(text)
					return ok && n < *spec.Minimum
				},
				key:   messages.KeyMinNumber,
				bound: numberBound(spec.Minimum),
			},
			{
				skip:  cfg.IgnoreIntCheck || spec.Format != FormatInt64 || !nonEmpty,
				fails: func() bool { return !numstr.IsInt(text) },
				key:   messages.KeyInt,
			},
		})
	}
}

// NumberText renders a number validator input as the text the lexical
// checks inspect. nil (and nil pointers) become "", strings are kept
// verbatim, and numbers use their shortest plain decimal form. A
// json.Number already in plain decimal form is kept as written.
func NumberText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return jsonNumberText(v)
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return NumberText(rv.Elem().Interface())
	}
	return fmt.Sprint(value)
}

// jsonNumberText keeps plain decimal literals as written, so large integers
// keep every digit, and renders exponent forms such as 1e3 in decimal.
func jsonNumberText(n json.Number) string {
	literal := string(n)
	if numstr.IsFloat(literal) {
		return literal
	}
	f, err := n.Float64()
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return literal
	}
	return formatFloat(f, 64)
}

func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// negative zero renders as "0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}

func hasZeroStart(text string) bool {
	if len(text) > 1 && text[0] == '0' && text[1] != '.' {
		return true
	}
	return len(text) > 2 && text[0] == '-' && text[1] == '0' && text[2] != '.'
}

// parseNumber converts lexically checked text back to a float. Surrounding
// whitespace is ignored and blank text reads as zero. Out-of-range text
// saturates to an infinity.
func parseNumber(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n, true
		}
		return 0, false
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
