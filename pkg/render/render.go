package render

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/logging"
)

// DefaultKeyPrefix is the key the top-level nodes of a document hang off.
const DefaultKeyPrefix = "RichText-"

// Options configures one Renderer. The zero value renders with the defaults.
type Options[T any] struct {
	// NodeRenderers replace or add node renderers by tag.
	NodeRenderers NodeRenderers[T]
	// MarkRenderers replace or add mark renderers by tag.
	MarkRenderers MarkRenderers[T]
	// TextRenderer replaces the text renderer.
	TextRenderer TextRenderer[T]

	// KeyPrefix defaults to DefaultKeyPrefix.
	KeyPrefix string
	// MaxDepth bounds document nesting; 0 means unlimited.
	MaxDepth int
	// Iterative selects the explicit-stack traversal.
	Iterative bool

	// Logger receives render diagnostics; defaults to the "render" component logger.
	Logger *zerolog.Logger
}

// Renderer renders documents with a fixed, merged set of registries.
type Renderer[T any] struct {
	walker    *Walker[T]
	keyPrefix string
	iterative bool
	logger    zerolog.Logger
}

// New merges opts over the defaults and returns a renderer using h.
func New[T any](h Factory[T], opts Options[T]) *Renderer[T] {
	logger := logging.GetLogger("render")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	keyPrefix := opts.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}

	regs := Merge(Defaults[T](), Overrides(opts.NodeRenderers, opts.MarkRenderers, opts.TextRenderer))
	w := NewWalker(h, regs)
	w.MaxDepth = opts.MaxDepth
	w.Logger = logger

	return &Renderer[T]{
		walker:    w,
		keyPrefix: keyPrefix,
		iterative: opts.Iterative,
		logger:    logger,
	}
}

// Render renders the top-level content of doc, one output per block. A nil
// document logs a warning and yields an empty sequence.
func (r *Renderer[T]) Render(doc *document.Node) ([]T, error) {
	if doc == nil {
		r.logger.Warn().Msg("No document given to RichText renderer")
		return []T{}, nil
	}
	if r.iterative {
		return r.walker.RenderNodeListIterative(doc.Content, r.keyPrefix)
	}
	return r.walker.RenderNodeList(doc.Content, r.keyPrefix)
}

// Walker exposes the underlying walker, for hosts rendering node fragments.
func (r *Renderer[T]) Walker() *Walker[T] {
	return r.walker
}

// Render renders doc with h and opts in one call.
func Render[T any](h Factory[T], doc *document.Node, opts Options[T]) ([]T, error) {
	return New(h, opts).Render(doc)
}
