package apiref

// MissingReferenceMessage is reported when an {@inheritdoc} tag carries no
// reference.
const MissingReferenceMessage = "Expected reference within {@inheritdoc} tag"

// Resolver resolves references to documentation items.
type Resolver struct {
	Packages PackageLoader
}

// NewResolver returns a Resolver backed by the given loader.
func NewResolver(packages PackageLoader) *Resolver {
	return &Resolver{Packages: packages}
}

// GetItem resolves ref to an export, or to a member of a class-like export
// when ref names one. A nil ref and an unresolvable package are passed to
// report; a missing export or member is not. The returned error is non-nil
// only for fatal conditions raised while loading the package.
func (r *Resolver) GetItem(ref *Reference, report ReportFunc) (Resolution, error) {
	if ref == nil {
		report.Report(MissingReferenceMessage)
		return NotFound(ReasonMissingReference), nil
	}

	pkg, err := r.Packages.GetPackage(*ref, report)
	if err != nil {
		return Resolution{}, err
	}
	if pkg == nil {
		if ref.IsLocal() {
			return NotFound(ReasonLocalPackage), nil
		}
		return NotFound(ReasonPackageNotFound), nil
	}

	item, ok := pkg.Export(ref.ExportName)
	if !ok {
		return NotFound(ReasonExportNotFound), nil
	}

	if ref.MemberName != "" {
		if !item.Kind.IsClassLike() {
			return NotFound(ReasonNotClassLike), nil
		}
		member, ok := item.Member(ref.MemberName)
		if !ok {
			return NotFound(ReasonMemberNotFound), nil
		}
		item = member
	}

	return Found(item), nil
}
