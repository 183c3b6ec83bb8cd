package validator_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldcheck/pkg/messages"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

func TestStringValidator(t *testing.T) {
	digits := validator.StringSpec{Pattern: "^[0-9]+$", PatternError: "digits only"}
	bounded := validator.StringSpec{MinLength: validator.Len(3), MaxLength: validator.Len(5)}

	tests := []struct {
		name  string
		cfg   validator.StringConfig
		spec  validator.StringSpec
		value string
		want  outcome
	}{
		{name: "below min", spec: bounded, value: "ab", want: failedWith(messages.KeyMinLength, 3)},
		{name: "above max", spec: bounded, value: "abcdef", want: failedWith(messages.KeyMaxLength, 5)},
		{name: "within bounds", spec: bounded, value: "abc", want: valid()},
		{name: "at max", spec: bounded, value: "abcde", want: valid()},
		{name: "runes not bytes", spec: bounded, value: "héllo", want: valid()},
		{name: "pattern override", spec: digits, value: "12a", want: outcome{Key: messages.KeyInvalid, Message: "digits only"}},
		{name: "pattern generic", spec: validator.StringSpec{Pattern: "^[0-9]+$"}, value: "12a", want: failed(messages.KeyInvalid)},
		{name: "pattern match", spec: digits, value: "123", want: valid()},
		{name: "pattern is a search", spec: validator.StringSpec{Pattern: "[0-9]"}, value: "a1b", want: valid()},
		{name: "pattern runs on empty optional value", spec: digits, value: "", want: outcome{Key: messages.KeyInvalid, Message: "digits only"}},
		{name: "required empty", spec: validator.StringSpec{Required: true}, value: "", want: failed(messages.KeyRequired)},
		{
			name:  "required beats min and pattern",
			spec:  validator.StringSpec{Required: true, MinLength: validator.Len(2), Pattern: "^x$"},
			value: "",
			want:  failed(messages.KeyRequired),
		},
		{name: "required blank is present", spec: validator.StringSpec{Required: true}, value: " ", want: failed(messages.KeySpaceStart)},
		{name: "optional empty", spec: validator.StringSpec{}, value: "", want: valid()},
		{name: "empty optional below min", spec: validator.StringSpec{MinLength: validator.Len(1)}, value: "", want: failedWith(messages.KeyMinLength, 1)},
		{name: "leading space", spec: validator.StringSpec{}, value: " a", want: failed(messages.KeySpaceStart)},
		{name: "trailing space", spec: validator.StringSpec{}, value: "a ", want: failed(messages.KeySpaceEnd)},
		{name: "leading newline", spec: validator.StringSpec{}, value: "\na", want: failed(messages.KeySpaceStart)},
		{name: "trailing nbsp", spec: validator.StringSpec{}, value: "a\u00a0", want: failed(messages.KeySpaceEnd)},
		{name: "leading bom", spec: validator.StringSpec{}, value: "\ufeffa", want: failed(messages.KeySpaceStart)},
		{name: "inner space", spec: validator.StringSpec{}, value: "a b", want: valid()},
		{
			name:  "space before length",
			spec:  validator.StringSpec{MaxLength: validator.Len(1)},
			value: "abc ",
			want:  failed(messages.KeySpaceEnd),
		},
		{
			name:  "length before pattern",
			spec:  validator.StringSpec{MaxLength: validator.Len(2), Pattern: "^[0-9]+$"},
			value: "abc",
			want:  failedWith(messages.KeyMaxLength, 2),
		},
		{name: "negative bound is unset", spec: validator.StringSpec{MinLength: validator.Len(-3)}, value: "a", want: valid()},
		{
			name:  "ignore required",
			cfg:   validator.StringConfig{IgnoreRequiredCheck: true},
			spec:  validator.StringSpec{Required: true},
			value: "",
			want:  valid(),
		},
		{
			name:  "ignore space start",
			cfg:   validator.StringConfig{IgnoreSpaceStartCheck: true},
			spec:  validator.StringSpec{MaxLength: validator.Len(1)},
			value: " a",
			want:  failedWith(messages.KeyMaxLength, 1),
		},
		{
			name:  "ignore space end",
			cfg:   validator.StringConfig{IgnoreSpaceEndCheck: true},
			value: "a ",
			want:  valid(),
		},
		{
			name:  "ignore max keeps pattern",
			cfg:   validator.StringConfig{IgnoreMaxLengthCheck: true},
			spec:  validator.StringSpec{MaxLength: validator.Len(1), Pattern: "^[0-9]+$"},
			value: "abc",
			want:  failed(messages.KeyInvalid),
		},
		{
			name:  "ignore min",
			cfg:   validator.StringConfig{IgnoreMinLengthCheck: true},
			spec:  bounded,
			value: "ab",
			want:  valid(),
		},
		{
			name:  "ignore regexp",
			cfg:   validator.StringConfig{IgnoreRegExpCheck: true},
			spec:  digits,
			value: "12a",
			want:  valid(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outcomeOf(t, validator.NewString(tt.cfg)(tt.spec, tt.value))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected outcome (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringValidatorCustomMessages(t *testing.T) {
	check := validator.NewString(validator.StringConfig{
		CustomErrorMessages: messages.Catalog{
			Required:  messages.Text("Fill this in"),
			MinLength: messages.Bounded("{bound}+ chars"),
		},
	})

	if err := check(validator.StringSpec{Required: true}, ""); err == nil || err.Error() != "Fill this in" {
		t.Fatalf("expected custom REQUIRED, got %v", err)
	}
	if err := check(validator.StringSpec{MinLength: validator.Len(4)}, "abc"); err == nil || err.Error() != "4+ chars" {
		t.Fatalf("expected custom minLength, got %v", err)
	}
	if err := check(validator.StringSpec{}, " a"); err == nil || err.Error() != defaults.Format(messages.KeySpaceStart, 0) {
		t.Fatalf("expected default SPACE_START, got %v", err)
	}
}

func TestStringValidatorInvalidPattern(t *testing.T) {
	specs := map[string]validator.StringSpec{
		"plain":         {Pattern: "(["},
		"required":      {Required: true, Pattern: "(["},
		"lookahead":     {Pattern: "^(?=a)"},
		"with override": {Pattern: "(", PatternError: "never shown"},
	}

	for name, spec := range specs {
		for _, cfg := range []validator.StringConfig{{}, {IgnoreRegExpCheck: true}} {
			err := validator.NewString(cfg)(spec, "")
			if !errors.Is(err, validator.ErrInvalidPattern) {
				t.Fatalf("%s: expected ErrInvalidPattern, got %v", name, err)
			}
			if _, ok := validator.AsViolation(err); ok {
				t.Fatalf("%s: expected malformed pattern not to be a violation", name)
			}
		}
		if err := spec.Check(); !errors.Is(err, validator.ErrInvalidPattern) {
			t.Fatalf("%s: expected Check to report the pattern, got %v", name, err)
		}
	}

	if err := (validator.StringSpec{Pattern: "^ok$"}).Check(); err != nil {
		t.Fatalf("expected valid pattern to pass Check, got %v", err)
	}
}

func TestCompilePatternReusesCompiledExpressions(t *testing.T) {
	first, err := validator.CompilePattern("^[a-z]+$")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := validator.CompilePattern("^[a-z]+$")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if first != second {
		t.Fatalf("expected cached expression to be reused")
	}
}
