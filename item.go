package apiref

import (
	"encoding/json"
	"slices"
	"strings"
)

// ItemKind identifies the variant of a documentation item.
type ItemKind string

// ItemKind constants as they appear in *.api.json manifests.
const (
	KindPackage        ItemKind = "package"
	KindClass          ItemKind = "class"
	KindInterface      ItemKind = "interface"
	KindFunction       ItemKind = "function"
	KindMethod         ItemKind = "method"
	KindProperty       ItemKind = "property"
	KindConstructor    ItemKind = "constructor"
	KindEnum           ItemKind = "enum"
	KindEnumValue      ItemKind = "enum value"
	KindNamespace      ItemKind = "namespace"
	KindModuleVariable ItemKind = "module variable"
	KindTypeAlias      ItemKind = "type alias"
)

// IsClassLike reports whether items of this kind carry a member mapping.
func (k ItemKind) IsClassLike() bool {
	return k == KindClass || k == KindInterface
}

// MarkupElement is one node of the documentation markup tree.
type MarkupElement struct {
	Kind      string          `json:"kind"`
	Text      string          `json:"text,omitempty"`
	Elements  []MarkupElement `json:"elements,omitempty"`
	TargetURL string          `json:"targetUrl,omitempty"`
}

// Markup is a sequence of markup elements, e.g. an item summary.
type Markup []MarkupElement

// Text flattens the markup into plain text. Paragraph breaks become blank
// lines and link targets are dropped.
func (m Markup) Text() string {
	var sb strings.Builder
	writeMarkup(&sb, m)
	return strings.TrimSpace(sb.String())
}

func writeMarkup(sb *strings.Builder, elems []MarkupElement) {
	for _, e := range elems {
		switch e.Kind {
		case "paragraph":
			sb.WriteString("\n\n")
		case "code":
			sb.WriteString("`" + e.Text + "`")
		case "code-box":
			sb.WriteString("\n\n" + e.Text + "\n\n")
		default:
			sb.WriteString(e.Text)
		}
		writeMarkup(sb, e.Elements)
	}
}

// DocItem is a single documentation item: an export of a package or a member
// of a class-like export. Only class-like kinds expose members.
type DocItem struct {
	Kind              ItemKind `json:"kind"`
	Name              string   `json:"-"`
	Summary           Markup   `json:"summary,omitempty"`
	Remarks           Markup   `json:"remarks,omitempty"`
	DeprecatedMessage Markup   `json:"deprecatedMessage,omitempty"`
	Signature         string   `json:"signature,omitempty"`
	IsBeta            bool     `json:"isBeta,omitempty"`

	members map[string]*DocItem
}

// Member returns the named member. It always reports false for items that are
// not class-like.
func (i *DocItem) Member(name string) (*DocItem, bool) {
	if !i.Kind.IsClassLike() {
		return nil, false
	}
	m, ok := i.members[name]
	return m, ok
}

// MemberNames returns the sorted member names of a class-like item.
func (i *DocItem) MemberNames() []string {
	if !i.Kind.IsClassLike() {
		return nil
	}
	return sortedKeys(i.members)
}

// UnmarshalJSON decodes an item and keeps the member mapping only for
// class-like kinds.
func (i *DocItem) UnmarshalJSON(data []byte) error {
	type item DocItem
	var raw struct {
		item
		Members map[string]*DocItem `json:"members"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = DocItem(raw.item)
	if i.Kind.IsClassLike() {
		i.members = named(raw.Members)
	}
	return nil
}

// DocPackage is a loaded and validated manifest.
type DocPackage struct {
	// Name is the cache key the package was stored under.
	Name        string `json:"-"`
	Path        string `json:"-"`
	ContentHash string `json:"-"`

	Kind    ItemKind `json:"kind"`
	Summary Markup   `json:"summary,omitempty"`
	Remarks Markup   `json:"remarks,omitempty"`

	Exports map[string]*DocItem `json:"exports"`
}

// Export returns the named export.
func (p *DocPackage) Export(name string) (*DocItem, bool) {
	item, ok := p.Exports[name]
	return item, ok
}

// ExportNames returns the sorted export names.
func (p *DocPackage) ExportNames() []string {
	return sortedKeys(p.Exports)
}

// UnmarshalJSON decodes a package and names its exports after their keys.
func (p *DocPackage) UnmarshalJSON(data []byte) error {
	type pkg DocPackage
	var raw pkg
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = DocPackage(raw)
	p.Exports = named(p.Exports)
	return nil
}

// named drops nil entries and sets each item's Name from its key.
func named(items map[string]*DocItem) map[string]*DocItem {
	out := make(map[string]*DocItem, len(items))
	for name, item := range items {
		if item == nil {
			continue
		}
		item.Name = name
		out[name] = item
	}
	return out
}

func sortedKeys(m map[string]*DocItem) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
