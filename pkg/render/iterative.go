package render

import (
	"github.com/arthur-debert/richtext/pkg/document"
)

type result[T any] struct {
	out T
	err error
}

type frame struct {
	node     *document.Node
	key      string
	depth    int
	expanded bool
}

// RenderNodeListIterative is RenderNodeList on an explicit stack. Keys,
// ordering and results are identical; Go stack usage does not grow with
// document depth.
//
// Children of a container are rendered before its renderer runs. When the
// renderer passes the node's own content to next, the precomputed results
// are returned; any other slice (synthesized content, a sub-slice) is
// rendered on demand. A failure in a precomputed child only surfaces if the
// renderer asks for it. Child renderers may run even if the parent never
// calls next; renderers with side effects see more calls than recursively.
func (w *Walker[T]) RenderNodeListIterative(nodes []*document.Node, parentKey string) ([]T, error) {
	return w.iterateList(nodes, parentKey, 1)
}

// RenderNodeIterative is RenderNode on an explicit stack.
func (w *Walker[T]) RenderNodeIterative(node *document.Node, key string) (T, error) {
	results := w.iterate([]frame{{node: node, key: key, depth: 1}})
	r := results[key]
	return r.out, r.err
}

func (w *Walker[T]) iterateList(nodes []*document.Node, parentKey string, depth int) ([]T, error) {
	results := w.iterate(pushFrames(nil, nodes, parentKey, depth))
	return collect(results, len(nodes), parentKey)
}

// iterate evaluates the given root frames in post-order. Roots must be
// ordered so that the last one is evaluated first, as pushFrames does.
func (w *Walker[T]) iterate(stack []frame) map[string]result[T] {
	results := make(map[string]result[T])

	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]

		if !f.expanded && w.expands(f.node, f.key, f.depth) {
			stack[top].expanded = true
			stack = pushFrames(stack, f.node.Content, f.key, f.depth+1)
			continue
		}

		stack = stack[:top]
		if !f.expanded {
			out, err := w.renderNode(f.node, f.key, f.depth)
			results[f.key] = result[T]{out: out, err: err}
			continue
		}

		out, err := w.finish(f, results)
		results[f.key] = result[T]{out: out, err: err}
		for i := range f.node.Content {
			delete(results, document.ChildKey(f.key, i))
		}
	}
	return results
}

// expands reports whether the node's renderer will run with precomputed children.
func (w *Walker[T]) expands(node *document.Node, key string, depth int) bool {
	if node.IsText() || w.checkDepth(key, depth) != nil {
		return false
	}
	_, ok := w.dispatch(node, key)
	return ok
}

func (w *Walker[T]) finish(f frame, results map[string]result[T]) (T, error) {
	renderer, _ := w.dispatch(f.node, f.key)
	content := f.node.Content

	next := func(children []*document.Node) ([]T, error) {
		if sameList(children, content) {
			return collect(results, len(children), f.key)
		}
		return w.iterateList(children, f.key, f.depth+1)
	}
	return renderer(w.Factory, f.node, f.key, next)
}

func pushFrames(stack []frame, nodes []*document.Node, parentKey string, depth int) []frame {
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: nodes[i], key: document.ChildKey(parentKey, i), depth: depth})
	}
	return stack
}

func collect[T any](results map[string]result[T], n int, parentKey string) ([]T, error) {
	out := make([]T, n)
	for i := 0; i < n; i++ {
		r := results[document.ChildKey(parentKey, i)]
		if r.err != nil {
			return nil, r.err
		}
		out[i] = r.out
	}
	return out, nil
}

func sameList(a, b []*document.Node) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
