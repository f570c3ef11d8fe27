// Package apiref resolves cross-package API documentation references.
// Given a reference such as "@scope/package:Export.member" found inside an
// {@inheritdoc} tag, it locates the documentation item in the owning
// package's *.api.json manifest, loading and validating that manifest on
// first use.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, jsonschema/, slog/).
package apiref
