// Package tree is an element factory producing a plain in-memory element
// tree. It keeps render keys, which the HTML and XML factories drop, and
// serializes to JSON for inspection.
package tree

import (
	"encoding/json"
	"html"
	"sort"
	"strings"

	"github.com/arthur-debert/richtext/pkg/render"
)

// Element is one output node. A text node has an empty Tag.
type Element struct {
	Tag      string            `json:"tag,omitempty"`
	Key      string            `json:"key,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Element        `json:"children,omitempty"`
}

// Factory builds Elements.
type Factory struct{}

var _ render.Factory[*Element] = Factory{}

// NewFactory returns a tree factory.
func NewFactory() Factory { return Factory{} }

// Element implements render.Factory.
func (Factory) Element(tag string, props render.Props, children ...*Element) *Element {
	el := &Element{Tag: tag, Key: props.Key, Children: children}
	if len(props.Attrs) > 0 {
		el.Attrs = make(map[string]string, len(props.Attrs))
		for _, a := range props.Attrs {
			el.Attrs[a.Name] = a.Value
		}
	}
	return el
}

// Text implements render.Factory.
func (Factory) Text(value string) *Element {
	return &Element{Text: value}
}

// IsText reports whether e is a text node.
func (e *Element) IsText() bool { return e.Tag == "" }

// TextContent concatenates the text below e.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	if e.IsText() {
		b.WriteString(e.Text)
		return
	}
	for _, c := range e.Children {
		c.writeText(b)
	}
}

// Find returns the elements below e, e included, with the given tag in document order.
func (e *Element) Find(tag string) []*Element {
	var out []*Element
	stack := []*Element{e}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if el.Tag == tag {
			out = append(out, el)
		}
		for i := len(el.Children) - 1; i >= 0; i-- {
			stack = append(stack, el.Children[i])
		}
	}
	return out
}

var voidElements = map[string]bool{"hr": true, "br": true, "img": true}

// String renders e as compact HTML-like markup without keys.
func (e *Element) String() string {
	var b strings.Builder
	e.writeMarkup(&b)
	return b.String()
}

func (e *Element) writeMarkup(b *strings.Builder) {
	if e.IsText() {
		b.WriteString(html.EscapeString(e.Text))
		return
	}
	b.WriteByte('<')
	b.WriteString(e.Tag)
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(" " + name + `="` + html.EscapeString(e.Attrs[name]) + `"`)
	}
	b.WriteByte('>')
	if voidElements[e.Tag] && len(e.Children) == 0 {
		return
	}
	for _, c := range e.Children {
		c.writeMarkup(b)
	}
	b.WriteString("</" + e.Tag + ">")
}

// Markup joins the markup of a rendered sequence.
func Markup(nodes []*Element) string {
	var b strings.Builder
	for _, n := range nodes {
		n.writeMarkup(&b)
	}
	return b.String()
}

// Keys lists the keys of e and its descendants in document order, skipping text nodes.
func (e *Element) Keys() []string {
	var out []string
	if !e.IsText() {
		out = append(out, e.Key)
	}
	for _, c := range e.Children {
		out = append(out, c.Keys()...)
	}
	return out
}

// MarshalIndent encodes a rendered sequence as indented JSON.
func MarshalIndent(nodes []*Element) ([]byte, error) {
	return json.MarshalIndent(nodes, "", "  ")
}
