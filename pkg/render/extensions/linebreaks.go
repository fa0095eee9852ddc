package extensions

import (
	"strings"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/render"
)

// Break is the node type synthesized for a newline inside a text value.
const Break = "break"

// lineBreakTags are the containers whose direct text children are split.
var lineBreakTags = []string{
	document.Paragraph,
	document.Heading1,
	document.Heading2,
	document.Heading3,
	document.Heading4,
	document.Heading5,
	document.Heading6,
	document.ListItem,
	document.Quote,
	document.TableCell,
	document.TableHeaderCell,
}

// LineBreaks returns node overrides rendering newlines in text as br elements.
func LineBreaks[T any]() render.NodeRenderers[T] {
	out := render.NodeRenderers[T]{
		Break: render.Void[T]("br"),
	}
	for _, tag := range lineBreakTags {
		el, _ := render.ElementFor(tag)
		out[tag] = withLineBreaks[T](el)
	}
	return out
}

func withLineBreaks[T any](element string) render.NodeRenderer[T] {
	return func(h render.Factory[T], node *document.Node, key string, next render.Next[T]) (T, error) {
		children, err := next(SplitLines(node.Content))
		if err != nil {
			var zero T
			return zero, err
		}
		return h.Element(element, render.Props{Key: key}, children...), nil
	}
}

// SplitLines replaces every text node holding newlines by its line segments
// interleaved with break nodes. Segments keep the marks of their source.
// Empty segments are dropped. Without any newline, nodes is returned as is.
func SplitLines(nodes []*document.Node) []*document.Node {
	split := false
	for _, n := range nodes {
		if n.IsText() && strings.Contains(n.Text(), "\n") {
			split = true
			break
		}
	}
	if !split {
		return nodes
	}

	out := make([]*document.Node, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsText() || !strings.Contains(n.Text(), "\n") {
			out = append(out, n)
			continue
		}
		for i, line := range strings.Split(n.Text(), "\n") {
			if i > 0 {
				out = append(out, document.NewNode(Break))
			}
			if line == "" {
				continue
			}
			seg := document.NewText(line, n.MarkTypes()...)
			out = append(out, seg)
		}
	}
	return out
}
