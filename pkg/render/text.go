package render

import (
	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/registry"
)

// RenderText is the default text renderer. Without marks the value is
// returned as a bare text node. Otherwise marks nest in array order, the
// first mark outermost: the fold starts from the last mark, and fold step i
// renders under key "<key>-<i>".
func RenderText[T any](h Factory[T], marks []document.Mark, value, key string, markRenderers registry.Registry[MarkRenderer[T]]) (T, error) {
	out := h.Text(value)
	for i := range marks {
		mark := marks[len(marks)-1-i]

		var render MarkRenderer[T]
		ok := false
		if markRenderers != nil {
			render, ok = markRenderers.Lookup(mark.Type)
		}
		if !ok || render == nil {
			var zero T
			return zero, errors.Newf(errors.ErrMarkRendererMissing, "no renderer registered for mark %q", mark.Type).
				WithDetail("mark", mark.Type).
				WithDetail("key", key)
		}

		out = render(h, []T{out}, document.ChildKey(key, i))
	}
	return out, nil
}
