package apiref

import (
	"regexp"
	"strings"
)

// Reference identifies a documentation item, possibly in another package.
// It is the parsed form of the text inside an {@inheritdoc} tag.
type Reference struct {
	// ScopeName is the optional organization prefix, including the leading
	// "@" (e.g. "@microsoft").
	ScopeName string `json:"scopeName,omitempty"`

	// PackageName is empty when the reference points into the package
	// being documented.
	PackageName string `json:"packageName"`
	ExportName  string `json:"exportName"`
	MemberName  string `json:"memberName,omitempty"`
}

// CacheKey returns the identity under which the referenced package is cached:
// "scope/package" when a scope is present, else the bare package name.
func (r Reference) CacheKey() string {
	if r.ScopeName != "" {
		return r.ScopeName + "/" + r.PackageName
	}
	return r.PackageName
}

// IsLocal reports whether the reference points into the local package.
func (r Reference) IsLocal() bool {
	return r.PackageName == ""
}

// String renders the reference in declaration syntax.
func (r Reference) String() string {
	var sb strings.Builder
	if !r.IsLocal() {
		sb.WriteString(r.CacheKey())
		sb.WriteByte(':')
	}
	sb.WriteString(r.ExportName)
	if r.MemberName != "" {
		sb.WriteByte('.')
		sb.WriteString(r.MemberName)
	}
	return sb.String()
}

// Package and scope names start with a letter or digit, so they never
// resolve to "." or ".." when joined into a path.
var referenceRe = regexp.MustCompile(
	`^(?:(?:(@[A-Za-z0-9][A-Za-z0-9._~-]*)/)?([A-Za-z0-9][A-Za-z0-9._~-]*):)?([A-Za-z0-9_$-]+)(?:\.([A-Za-z0-9_$-]+))?$`,
)

// ParseReference parses "[@scope/][package:]Export[.member]". The text may
// still be wrapped in its "{@inheritdoc ...}" tag.
// Returns EINVALID if the text is not a valid reference.
func ParseReference(s string) (*Reference, error) {
	text := strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(text, "{@inheritdoc"); ok {
		inner, ok = strings.CutSuffix(inner, "}")
		if !ok {
			return nil, Errorf(EINVALID, "unterminated {@inheritdoc} tag: %q", s)
		}
		text = strings.TrimSpace(inner)
	}
	if text == "" {
		return nil, Errorf(EINVALID, "Expected reference within {@inheritdoc} tag")
	}

	m := referenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil, Errorf(EINVALID, "invalid API reference: %q", text)
	}

	return &Reference{
		ScopeName:   m[1],
		PackageName: m[2],
		ExportName:  m[3],
		MemberName:  m[4],
	}, nil
}

var packageRe = regexp.MustCompile(`^(?:(@[A-Za-z0-9][A-Za-z0-9._~-]*)/)?([A-Za-z0-9][A-Za-z0-9._~-]*)$`)

// ParsePackage parses a package identity "[@scope/]package" into a Reference
// with no export.
// Returns EINVALID if the text is not a valid package name.
func ParsePackage(s string) (Reference, error) {
	m := packageRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Reference{}, Errorf(EINVALID, "invalid package name: %q", s)
	}
	return Reference{ScopeName: m[1], PackageName: m[2]}, nil
}
