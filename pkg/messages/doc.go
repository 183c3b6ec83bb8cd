// Package messages is the error-message catalog consumed by the field
// validators. Every entry shares one call shape, Message(bound), so literal
// texts and bound-aware texts such as "Enter at most 5 characters" are
// resolved the same way at the call site.
//
// Callers start from Defaults and override any subset per validator through
// Catalog.Merge, which replaces whole entries and never merges deeper.
// Overrides can also be sourced from JSON or YAML files:
//
//	REQUIRED: Fill this in
//	maxLength: "No more than {bound} characters, please"
//
// File-sourced templates are reduced to plain text before use.
package messages
