package tree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/richtext/pkg/render"
)

func TestFactoryElement(t *testing.T) {
	h := NewFactory()
	el := h.Element("a", render.Props{
		Key:   "k-0",
		Attrs: []render.Attr{{Name: "href", Value: "https://example.com?a=1&b=2"}},
	}, h.Text("go"))

	assert.Equal(t, "a", el.Tag)
	assert.Equal(t, "k-0", el.Key)
	assert.False(t, el.IsText())
	assert.Equal(t, "go", el.TextContent())
	assert.Equal(t, `<a href="https://example.com?a=1&amp;b=2">go</a>`, el.String())
}

func TestMarkupVoidElements(t *testing.T) {
	h := NewFactory()
	nodes := []*Element{
		h.Element("hr", render.Props{Key: "0"}),
		h.Element("p", render.Props{Key: "1"}),
	}
	assert.Equal(t, "<hr><p></p>", Markup(nodes))
}

func TestAttributesSorted(t *testing.T) {
	h := NewFactory()
	el := h.Element("span", render.Props{Attrs: []render.Attr{
		{Name: "style", Value: "x"},
		{Name: "class", Value: "y"},
	}})
	assert.Equal(t, `<span class="y" style="x"></span>`, el.String())
}

func TestFindAndKeys(t *testing.T) {
	h := NewFactory()
	root := h.Element("ul", render.Props{Key: "r"},
		h.Element("li", render.Props{Key: "r-0"}, h.Text("a")),
		h.Element("li", render.Props{Key: "r-1"}, h.Element("li", render.Props{Key: "r-1-0"})),
	)

	found := root.Find("li")
	require.Len(t, found, 3)
	assert.Equal(t, "r-0", found[0].Key)
	assert.Equal(t, "r-1", found[1].Key)
	assert.Equal(t, "r-1-0", found[2].Key)
	assert.Equal(t, []string{"r", "r-0", "r-1", "r-1-0"}, root.Keys())
}

func TestMarshalIndent(t *testing.T) {
	h := NewFactory()
	data, err := MarshalIndent([]*Element{h.Element("p", render.Props{Key: "k"}, h.Text("x"))})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "p", decoded[0]["tag"])
	assert.Equal(t, "k", decoded[0]["key"])
	assert.NotContains(t, decoded[0], "attrs")
}
