package apiref

// Reason explains why a reference did not resolve.
type Reason string

// Reason constants for unresolved references.
const (
	ReasonNone             Reason = ""
	ReasonMissingReference Reason = "missing reference"
	ReasonLocalPackage     Reason = "local package"
	ReasonPackageNotFound  Reason = "package not found"
	ReasonExportNotFound   Reason = "export not found"
	ReasonNotClassLike     Reason = "not class-like"
	ReasonMemberNotFound   Reason = "member not found"
)

// Resolution is the outcome of resolving a reference: either the found item
// or the reason nothing was found.
type Resolution struct {
	Item   *DocItem
	Reason Reason
}

// Found returns a successful resolution.
func Found(item *DocItem) Resolution {
	return Resolution{Item: item}
}

// NotFound returns an unsuccessful resolution.
func NotFound(reason Reason) Resolution {
	return Resolution{Reason: reason}
}

// Found reports whether an item was resolved.
func (r Resolution) Found() bool {
	return r.Item != nil
}
