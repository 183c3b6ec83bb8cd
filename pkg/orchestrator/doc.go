// Package orchestrator wires the loader -> parser -> field set pipeline so
// callers can validate a request body against an OpenAPI operation with a
// single call, while still injecting their own loader, parser or
// transformers.
package orchestrator
