package extensions

import "github.com/arthur-debert/richtext/pkg/render"

// Combine merges override sets left to right; later sets win per tag.
func Combine[T any](sets ...render.NodeRenderers[T]) render.NodeRenderers[T] {
	out := render.NodeRenderers[T]{}
	for _, set := range sets {
		for tag, fn := range set {
			out[tag] = fn
		}
	}
	return out
}
