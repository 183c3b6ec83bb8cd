// Package validator implements the field-level validation engine. Five
// factories, one per value kind (array, boolean, number, object, string),
// take a configuration record and return a validator function closing over
// it:
//
//	check := validator.NewString(validator.StringConfig{})
//	err := check(validator.StringSpec{MinLength: validator.Len(3)}, "ab")
//	// err.Error() == "Enter at least 3 characters"
//
// A validator returns nil when the value satisfies the spec and a
// *Violation describing the first failed check otherwise. Checks run in a
// fixed order and the first failure short-circuits the rest, so a required
// number that is blank reports REQUIRED rather than a range error. The
// order for each kind is documented on its factory.
//
// Every check can be switched off through the Ignore* flags of the
// configuration, and CustomErrorMessages replaces any subset of the default
// catalog (see package messages). Configurations are copied into the
// closure; validators keep no state between calls and are safe for
// concurrent use.
//
// # Required booleans
//
// The boolean validator treats false like a missing value: a required
// boolean must be explicitly affirmed (think "accept the terms"). This is
// intentional and tests pin it.
//
// # Malformed specs
//
// Specs are assumed to come from a schema layer; only values are untrusted.
// The single spec-level fault is a StringSpec pattern that does not compile.
// The string validator reports it as an error wrapping ErrInvalidPattern on
// every call, before any check runs. Schema layers can call CompilePattern
// to reject such specs when they are built.
package validator
