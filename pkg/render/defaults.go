package render

import (
	"fmt"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/registry"
)

// containerElements maps block node types to the element wrapping their content.
var containerElements = map[string]string{
	document.Paragraph:          "p",
	document.Heading1:           "h1",
	document.Heading2:           "h2",
	document.Heading3:           "h3",
	document.Heading4:           "h4",
	document.Heading5:           "h5",
	document.Heading6:           "h6",
	document.EmbeddedEntryBlock: "div",
	document.UnorderedList:      "ul",
	document.OrderedList:        "ol",
	document.ListItem:           "li",
	document.Quote:              "blockquote",
	document.Table:              "table",
	document.TableRow:           "tr",
	document.TableCell:          "td",
	document.TableHeaderCell:    "th",
}

// markElements maps mark types to their decoration element.
var markElements = map[string]string{
	document.Bold:        "strong",
	document.Italic:      "em",
	document.Underline:   "u",
	document.Code:        "code",
	document.Superscript: "sup",
	document.Subscript:   "sub",
}

// inlineReferences are rendered as placeholders until a host resolves them.
var inlineReferences = []string{
	document.AssetHyperlink,
	document.EntryHyperlink,
	document.EmbeddedEntryInline,
}

// PlaceholderStyle is the inline style of reference placeholders.
const PlaceholderStyle = "margin: 0px 5px; padding: 0 .25rem 0 .75rem; border: 1px solid #d3dce0; font-family: monospace"

// ElementFor reports the element a default node or mark renderer produces for tag.
func ElementFor(tag string) (string, bool) {
	if el, ok := containerElements[tag]; ok {
		return el, true
	}
	if el, ok := markElements[tag]; ok {
		return el, true
	}
	switch tag {
	case document.HR:
		return "hr", true
	case document.Hyperlink:
		return "a", true
	}
	return "", false
}

// DefaultNodeRenderers returns a new registry holding the built-in node renderers.
func DefaultNodeRenderers[T any]() registry.Registry[NodeRenderer[T]] {
	reg := registry.New[NodeRenderer[T]]()
	for tag, el := range containerElements {
		registry.MustRegister(reg, tag, Container[T](el))
	}
	registry.MustRegister(reg, document.HR, Void[T]("hr"))
	registry.MustRegister(reg, document.Hyperlink, NodeRenderer[T](renderHyperlink[T]))
	for _, tag := range inlineReferences {
		registry.MustRegister(reg, tag, placeholderFor[T](tag))
	}
	return reg
}

// DefaultMarkRenderers returns a new registry holding the built-in mark renderers.
func DefaultMarkRenderers[T any]() registry.Registry[MarkRenderer[T]] {
	reg := registry.New[MarkRenderer[T]]()
	for tag, el := range markElements {
		registry.MustRegister(reg, tag, Decoration[T](el))
	}
	return reg
}

// Container returns a node renderer wrapping the node's rendered content in element.
func Container[T any](element string) NodeRenderer[T] {
	return func(h Factory[T], node *document.Node, key string, next Next[T]) (T, error) {
		children, err := next(node.Content)
		if err != nil {
			var zero T
			return zero, err
		}
		return h.Element(element, Props{Key: key}, children...), nil
	}
}

// Void returns a node renderer producing a childless element.
func Void[T any](element string) NodeRenderer[T] {
	return func(h Factory[T], _ *document.Node, key string, _ Next[T]) (T, error) {
		return h.Element(element, Props{Key: key}), nil
	}
}

// Decoration returns a mark renderer wrapping children in element.
func Decoration[T any](element string) MarkRenderer[T] {
	return func(h Factory[T], children []T, key string) T {
		return h.Element(element, Props{Key: key}, children...)
	}
}

func renderHyperlink[T any](h Factory[T], node *document.Node, key string, next Next[T]) (T, error) {
	children, err := next(node.Content)
	if err != nil {
		var zero T
		return zero, err
	}
	props := Props{
		Key:   key,
		Attrs: []Attr{{Name: "href", Value: node.URI()}},
	}
	return h.Element("a", props, children...), nil
}

func placeholderFor[T any](nodeType string) NodeRenderer[T] {
	return func(h Factory[T], node *document.Node, key string, _ Next[T]) (T, error) {
		return Placeholder(h, nodeType, node, key), nil
	}
}

// Placeholder renders the visible stand-in for an unresolved entry or asset
// reference: an inline token naming the node type and the linked id.
func Placeholder[T any](h Factory[T], nodeType string, node *document.Node, key string) T {
	props := Props{
		Key:   key,
		Attrs: []Attr{{Name: "style", Value: PlaceholderStyle}},
	}
	return h.Element("span", props, h.Text(fmt.Sprintf("inline: %s, sys.id: %s", nodeType, node.TargetID())))
}
