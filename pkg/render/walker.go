package render

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
)

// Walker dispatches document nodes to their renderers. A Walker holds no
// mutable state; one value may serve concurrent renders.
type Walker[T any] struct {
	Factory    Factory[T]
	Registries Registries[T]

	// MaxDepth bounds nesting; 0 means unlimited. Top-level nodes are depth 1.
	MaxDepth int

	Logger zerolog.Logger
}

// NewWalker creates a walker over the given effective registries.
func NewWalker[T any](h Factory[T], regs Registries[T]) *Walker[T] {
	return &Walker[T]{
		Factory:    h,
		Registries: regs,
		Logger:     zerolog.Nop(),
	}
}

// RenderNodeList renders nodes under parentKey, node i receiving key
// "<parentKey>-<i>". The result has one entry per input node, in order.
func (w *Walker[T]) RenderNodeList(nodes []*document.Node, parentKey string) ([]T, error) {
	return w.renderList(nodes, parentKey, 1)
}

// RenderNode renders a single node under key.
func (w *Walker[T]) RenderNode(node *document.Node, key string) (T, error) {
	return w.renderNode(node, key, 1)
}

func (w *Walker[T]) renderList(nodes []*document.Node, parentKey string, depth int) ([]T, error) {
	out := make([]T, len(nodes))
	for i, node := range nodes {
		rendered, err := w.renderNode(node, document.ChildKey(parentKey, i), depth)
		if err != nil {
			return nil, err
		}
		out[i] = rendered
	}
	return out, nil
}

func (w *Walker[T]) renderNode(node *document.Node, key string, depth int) (T, error) {
	if err := w.checkDepth(key, depth); err != nil {
		var zero T
		return zero, err
	}

	if node.IsText() {
		return w.renderText(node, key)
	}

	renderer, ok := w.dispatch(node, key)
	if !ok {
		return w.diagnostic(node, key), nil
	}

	next := func(children []*document.Node) ([]T, error) {
		return w.renderList(children, key, depth+1)
	}
	return renderer(w.Factory, node, key, next)
}

func (w *Walker[T]) renderText(node *document.Node, key string) (T, error) {
	text := w.Registries.Text
	if text == nil {
		text = RenderText[T]
	}
	return text(w.Factory, node.Marks, node.Text(), key, w.Registries.Mark)
}

// dispatch finds the renderer for a non-text node. It fails for a missing
// registry, a node that is not a container, and an unmapped tag.
func (w *Walker[T]) dispatch(node *document.Node, key string) (NodeRenderer[T], bool) {
	if w.Registries.Node == nil {
		return nil, false
	}
	if node.Kind() != document.KindContainer || node.NodeType == "" {
		return nil, false
	}
	renderer, ok := w.Registries.Node.Lookup(node.NodeType)
	if !ok || renderer == nil {
		return nil, false
	}
	return renderer, true
}

// diagnostic renders the stand-in for a node dispatch rejected.
func (w *Walker[T]) diagnostic(node *document.Node, key string) T {
	if w.Registries.Node == nil {
		w.Logger.Debug().Str("key", key).Msg("Node renderer registry is missing")
		return LostRenderer(w.Factory, key)
	}
	tag := ""
	if node != nil {
		tag = node.NodeType
	}
	w.Logger.Debug().Str("key", key).Str("nodeType", tag).Msg("Unrecognized node type")
	return Unrecognized(w.Factory, tag, key)
}

func (w *Walker[T]) checkDepth(key string, depth int) error {
	if w.MaxDepth > 0 && depth > w.MaxDepth {
		return errors.Newf(errors.ErrDepthExceeded, "document nesting exceeds %d levels", w.MaxDepth).
			WithDetail("key", key).
			WithDetail("depth", depth)
	}
	return nil
}

// Unrecognized renders the diagnostic for an unknown node type; an empty tag reads "empty".
func Unrecognized[T any](h Factory[T], nodeType, key string) T {
	if nodeType == "" {
		nodeType = "empty"
	}
	return h.Element("div", Props{Key: key}, h.Text("(Unrecognized node type) "+nodeType))
}

// LostRenderer renders the diagnostic for a walker without a node registry.
func LostRenderer[T any](h Factory[T], key string) T {
	return h.Element("div", Props{Key: key}, h.Text(key+" ;lost nodeRenderer"))
}
