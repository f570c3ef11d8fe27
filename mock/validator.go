package mock

import "github.com/fwojciec/apiref"

var _ apiref.ManifestValidator = (*ManifestValidator)(nil)

// ManifestValidator is a mock implementation of apiref.ManifestValidator.
type ManifestValidator struct {
	ValidateManifestFn func(doc any) error
}

func (v *ManifestValidator) ValidateManifest(doc any) error {
	return v.ValidateManifestFn(doc)
}
