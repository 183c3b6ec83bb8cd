package validator

import (
	"fmt"
	"regexp"
	"sync"
)

// patternCache is unbounded: patterns come from loaded specs, never from
// request data.
var patternCache sync.Map // map[string]*regexp.Regexp

// CompilePattern compiles a StringSpec pattern, reusing earlier results for
// the same source. Failures wrap ErrInvalidPattern. Every distinct pattern
// stays cached for the life of the process, so pass only patterns taken
// from schemas or presets, not from submitted values.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// Check reports spec-level faults, currently only an uncompilable Pattern.
func (s StringSpec) Check() error {
	if s.Pattern == "" {
		return nil
	}
	_, err := CompilePattern(s.Pattern)
	return err
}
