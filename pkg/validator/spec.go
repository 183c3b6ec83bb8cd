package validator

// FormatInt64 is the NumberSpec format that requires integral values.
const FormatInt64 = "int64"

// ArraySpec constrains a sequence value.
type ArraySpec struct {
	Required  bool `json:"required,omitempty" yaml:"required,omitempty"`
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
}

// BooleanSpec constrains a boolean value.
type BooleanSpec struct {
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`
}

// NumberSpec constrains a numeric (or numeric text) value.
type NumberSpec struct {
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Maximum  *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Minimum  *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	// Format is matched against FormatInt64; other values are ignored.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// ObjectSpec constrains a mapping value.
type ObjectSpec struct {
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`
}

// StringSpec constrains a string value.
type StringSpec struct {
	Required  bool `json:"required,omitempty" yaml:"required,omitempty"`
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	// Pattern is an RE2 expression searched (not anchored) in the value.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// PatternError replaces the INVALID message when Pattern does not match.
	PatternError string `json:"patternError,omitempty" yaml:"patternError,omitempty"`
}

// Len returns a pointer to n for use as a length bound.
func Len(n int) *int {
	return &n
}

// Num returns a pointer to f for use as a numeric bound.
func Num(f float64) *float64 {
	return &f
}
