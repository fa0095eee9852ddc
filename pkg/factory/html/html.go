// Package html renders documents to HTML through gomponents nodes.
//
// Render keys are host bookkeeping and are dropped from the markup unless
// EmitKeys is set, in which case each element carries a data-key attribute.
package html

import (
	"strings"

	g "maragu.dev/gomponents"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/render"
)

// KeyAttr is the attribute holding the render key when keys are emitted.
const KeyAttr = "data-key"

// Factory builds gomponents nodes.
type Factory struct {
	EmitKeys bool
}

var _ render.Factory[g.Node] = Factory{}

// NewFactory returns an HTML factory.
func NewFactory(emitKeys bool) Factory {
	return Factory{EmitKeys: emitKeys}
}

// Element implements render.Factory.
func (f Factory) Element(tag string, props render.Props, children ...g.Node) g.Node {
	nodes := make([]g.Node, 0, len(props.Attrs)+len(children)+1)
	if f.EmitKeys && props.Key != "" {
		nodes = append(nodes, g.Attr(KeyAttr, props.Key))
	}
	for _, a := range props.Attrs {
		nodes = append(nodes, g.Attr(a.Name, a.Value))
	}
	nodes = append(nodes, children...)
	return g.El(tag, nodes...)
}

// Text implements render.Factory. The value is escaped on output.
func (Factory) Text(value string) g.Node {
	return g.Text(value)
}

// String serializes a rendered sequence.
func String(nodes []g.Node) (string, error) {
	var b strings.Builder
	if err := g.Group(nodes).Render(&b); err != nil {
		return "", errors.Wrap(err, errors.ErrRenderOutput, "failed to write html")
	}
	return b.String(), nil
}
