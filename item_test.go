package apiref_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/apiref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetManifest = `{
  "kind": "package",
  "summary": [{"kind": "text", "text": "Widgets."}],
  "exports": {
    "Widget": {
      "kind": "class",
      "summary": [{"kind": "text", "text": "A widget."}],
      "members": {
        "render": {"kind": "method", "signature": "render(): void"}
      }
    },
    "createWidget": {
      "kind": "function",
      "members": {
        "smuggled": {"kind": "method"}
      }
    }
  }
}`

func TestDocPackage_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var pkg apiref.DocPackage
	require.NoError(t, json.Unmarshal([]byte(widgetManifest), &pkg))

	assert.Equal(t, apiref.KindPackage, pkg.Kind)
	assert.Equal(t, []string{"Widget", "createWidget"}, pkg.ExportNames())

	widget, ok := pkg.Export("Widget")
	require.True(t, ok)
	assert.Equal(t, "Widget", widget.Name)
	assert.Equal(t, "A widget.", widget.Summary.Text())

	render, ok := widget.Member("render")
	require.True(t, ok)
	assert.Equal(t, "render", render.Name)
	assert.Equal(t, "render(): void", render.Signature)
	assert.Equal(t, []string{"render"}, widget.MemberNames())
}

func TestDocItem_MembersOnlyOnClassLikeKinds(t *testing.T) {
	t.Parallel()

	var pkg apiref.DocPackage
	require.NoError(t, json.Unmarshal([]byte(widgetManifest), &pkg))

	fn, ok := pkg.Export("createWidget")
	require.True(t, ok)

	_, ok = fn.Member("smuggled")
	assert.False(t, ok)
	assert.Empty(t, fn.MemberNames())
}

func TestItemKind_IsClassLike(t *testing.T) {
	t.Parallel()

	assert.True(t, apiref.KindClass.IsClassLike())
	assert.True(t, apiref.KindInterface.IsClassLike())
	assert.False(t, apiref.KindFunction.IsClassLike())
	assert.False(t, apiref.KindEnum.IsClassLike())
	assert.False(t, apiref.KindNamespace.IsClassLike())
}

func TestMarkup_Text(t *testing.T) {
	t.Parallel()

	m := apiref.Markup{
		{Kind: "text", Text: "Call "},
		{Kind: "code", Text: "render()"},
		{Kind: "text", Text: " to draw. See "},
		{Kind: "web-link", TargetURL: "https://example.com", Elements: []apiref.MarkupElement{{Kind: "text", Text: "docs"}}},
		{Kind: "paragraph"},
		{Kind: "text", Text: "More."},
	}

	assert.Equal(t, "Call `render()` to draw. See docs\n\nMore.", m.Text())
}
