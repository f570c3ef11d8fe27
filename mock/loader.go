package mock

import "github.com/fwojciec/apiref"

var _ apiref.PackageLoader = (*PackageLoader)(nil)

// PackageLoader is a mock implementation of apiref.PackageLoader.
type PackageLoader struct {
	GetPackageFn func(ref apiref.Reference, report apiref.ReportFunc) (*apiref.DocPackage, error)
}

func (l *PackageLoader) GetPackage(ref apiref.Reference, report apiref.ReportFunc) (*apiref.DocPackage, error) {
	return l.GetPackageFn(ref, report)
}
