package render

import (
	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/registry"
)

// Next renders child nodes below the current node's key.
type Next[T any] func(nodes []*document.Node) ([]T, error)

// NodeRenderer builds the output of one node. It decides whether and how to
// call next on the node's children; the walker imposes no container shape.
type NodeRenderer[T any] func(h Factory[T], node *document.Node, key string, next Next[T]) (T, error)

// MarkRenderer wraps already rendered content in one formatting decoration.
type MarkRenderer[T any] func(h Factory[T], children []T, key string) T

// TextRenderer renders a text leaf: its marks, its value and the mark registry.
// It occupies the fixed "text" slot of the node renderers.
type TextRenderer[T any] func(h Factory[T], marks []document.Mark, value, key string, markRenderers registry.Registry[MarkRenderer[T]]) (T, error)

// NodeRenderers is a partial node registry supplied by a host.
type NodeRenderers[T any] map[string]NodeRenderer[T]

// MarkRenderers is a partial mark registry supplied by a host.
type MarkRenderers[T any] map[string]MarkRenderer[T]

// Registries is the effective set of renderers for one render pass.
//
// A nil Node registry is a configuration defect: the walker renders a single
// diagnostic per node instead of traversing. A nil Mark registry makes every
// marked text leaf fail. A nil Text renderer falls back to RenderText.
type Registries[T any] struct {
	Node registry.Registry[NodeRenderer[T]]
	Mark registry.Registry[MarkRenderer[T]]
	Text TextRenderer[T]
}

// Defaults returns a fresh copy of the compiled-in renderers.
func Defaults[T any]() Registries[T] {
	return Registries[T]{
		Node: DefaultNodeRenderers[T](),
		Mark: DefaultMarkRenderers[T](),
		Text: RenderText[T],
	}
}

// Merge combines overrides over defaults, per registry and per tag. An
// override replaces the default function for its tag entirely and may
// introduce tags the defaults do not know. Neither input is modified.
func Merge[T any](defaults, overrides Registries[T]) Registries[T] {
	out := Registries[T]{
		Text: defaults.Text,
	}
	if defaults.Node != nil || overrides.Node != nil {
		out.Node = registry.Merge(defaults.Node, overrides.Node)
	}
	if defaults.Mark != nil || overrides.Mark != nil {
		out.Mark = registry.Merge(defaults.Mark, overrides.Mark)
	}
	if overrides.Text != nil {
		out.Text = overrides.Text
	}
	return out
}

// Overrides builds a partial Registries from host maps. Empty maps yield nil
// registries so Merge keeps the defaults untouched.
func Overrides[T any](nodes NodeRenderers[T], marks MarkRenderers[T], text TextRenderer[T]) Registries[T] {
	var out Registries[T]
	if len(nodes) > 0 {
		out.Node = registry.FromMap(map[string]NodeRenderer[T](nodes))
	}
	if len(marks) > 0 {
		out.Mark = registry.FromMap(map[string]MarkRenderer[T](marks))
	}
	out.Text = text
	return out
}
