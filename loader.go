package apiref

// ReportFunc receives diagnostics about references that could not be
// resolved. A nil ReportFunc discards them.
type ReportFunc func(message string)

// Report invokes f with message if f is not nil.
func (f ReportFunc) Report(message string) {
	if f != nil {
		f(message)
	}
}

// PackageLoader locates, validates, and caches package manifests.
type PackageLoader interface {
	// GetPackage returns the package the reference points into.
	// Returns (nil, nil) when the package cannot be resolved; the cause is
	// passed to report unless the reference is local.
	// Returns an error only for fatal conditions such as a malformed or
	// schema-invalid manifest.
	GetPackage(ref Reference, report ReportFunc) (*DocPackage, error)
}

// ManifestValidator checks a decoded manifest document against the bundled
// api-json-schema.json schema.
type ManifestValidator interface {
	// ValidateManifest returns EINVALID if doc does not conform to the schema.
	ValidateManifest(doc any) error
}
