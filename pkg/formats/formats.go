// Package formats names the ways a document can be written out. Each Format
// pairs an element factory with its serializer; all of them share the same
// renderer options.
//
// Built-in formats register themselves at init:
//
//	html      HTML via gomponents
//	xml       XML via etree
//	markdown  CommonMark text
//	terminal  styled terminal text via lipgloss
//	glamour   markdown rendered by glamour
//	json      the keyed element tree as JSON
package formats

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/registry"
	"github.com/arthur-debert/richtext/pkg/render"
	"github.com/arthur-debert/richtext/pkg/render/extensions"
)

// Options are shared by every format. Fields a format has no use for are ignored.
type Options struct {
	KeyPrefix  string
	MaxDepth   int
	Iterative  bool
	LineBreaks bool
	// Resolver enables link and embed resolution for references.
	Resolver extensions.Resolver

	// EmitKeys keeps render keys in html and xml output.
	EmitKeys bool
	// Indent pretty-prints xml.
	Indent int
	// Width wraps terminal and glamour output; 0 leaves lines unwrapped.
	Width int
	// Theme is a YAML theme file for the terminal format.
	Theme string
	// GlamourStyle is a glamour style name or JSON style path.
	GlamourStyle string
	// Color enables ANSI styling in terminal output.
	Color bool

	Logger *zerolog.Logger
}

// RenderFunc writes doc in one format.
type RenderFunc func(doc *document.Node, opts Options) (string, error)

// Format is one named output format.
type Format struct {
	Name        string
	Description string
	Extension   string
	Render      RenderFunc
}

var (
	formats     registry.Registry[Format]
	formatsOnce sync.Once
)

func formatRegistry() registry.Registry[Format] {
	formatsOnce.Do(func() {
		formats = registry.New[Format]()
	})
	return formats
}

// Register adds a format. Names are unique.
func Register(f Format) error {
	return formatRegistry().Register(f.Name, f)
}

// Get returns the named format.
func Get(name string) (Format, error) {
	f, ok := formatRegistry().Lookup(name)
	if !ok {
		return Format{}, errors.Newf(errors.ErrFormatNotFound, "unknown output format %q", name).
			WithDetail("format", name).
			WithDetail("available", Names())
	}
	return f, nil
}

// Names lists the registered format names, sorted.
func Names() []string {
	names := formatRegistry().List()
	sort.Strings(names)
	return names
}

// All returns the registered formats sorted by name.
func All() []Format {
	out := make([]Format, 0, formatRegistry().Count())
	for _, name := range Names() {
		f, _ := formatRegistry().Lookup(name)
		out = append(out, f)
	}
	return out
}

// Render writes doc in the named format.
func Render(name string, doc *document.Node, opts Options) (string, error) {
	f, err := Get(name)
	if err != nil {
		return "", err
	}
	return f.Render(doc, opts)
}

// renderOptions turns shared options into renderer options for T.
func renderOptions[T any](opts Options) render.Options[T] {
	var sets []render.NodeRenderers[T]
	if opts.LineBreaks {
		sets = append(sets, extensions.LineBreaks[T]())
	}
	if opts.Resolver != nil {
		sets = append(sets, extensions.Links[T](opts.Resolver))
	}

	out := render.Options[T]{
		KeyPrefix: opts.KeyPrefix,
		MaxDepth:  opts.MaxDepth,
		Iterative: opts.Iterative,
		Logger:    opts.Logger,
	}
	if len(sets) > 0 {
		out.NodeRenderers = extensions.Combine(sets...)
	}
	return out
}
