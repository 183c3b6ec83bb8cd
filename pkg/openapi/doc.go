// Package openapi declares the contracts for turning OpenAPI documents into
// field declarations: where a document comes from (Source), its raw payload
// (Document), and the Loader and Parser that produce Operations. The
// kin-openapi backed implementations live under internal/openapi and are
// constructed through the root fieldcheck package.
package openapi
