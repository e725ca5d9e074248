// Package openapi exposes the contracts used to pull enumeration descriptors
// out of OpenAPI documents: sources, raw documents, loaders and extractors.
// Implementations live under internal/openapi so kin-openapi stays out of the
// public API.
package openapi
