package extensions

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/render"
)

// Link is a resolved entry or asset.
type Link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Resolver looks up the targets of reference nodes by id.
type Resolver interface {
	ResolveEntry(id string) (Link, bool)
	ResolveAsset(id string) (Link, bool)
}

// MapResolver resolves from fixed maps.
type MapResolver struct {
	Entries map[string]Link `yaml:"entries"`
	Assets  map[string]Link `yaml:"assets"`
}

var _ Resolver = MapResolver{}

// ResolveEntry implements Resolver.
func (m MapResolver) ResolveEntry(id string) (Link, bool) {
	l, ok := m.Entries[id]
	return l, ok
}

// ResolveAsset implements Resolver.
func (m MapResolver) ResolveAsset(id string) (Link, bool) {
	l, ok := m.Assets[id]
	return l, ok
}

// LoadLinks reads a MapResolver from YAML:
//
//	entries:
//	  abc: {title: Post, url: /posts/abc}
//	assets:
//	  img1: {title: Logo, url: /logo.png}
func LoadLinks(r io.Reader) (MapResolver, error) {
	var m MapResolver
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return MapResolver{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to decode links file")
	}
	return m, nil
}

// Links returns node overrides rendering entry and asset references through
// resolver. Unresolved references render as they would without the override.
func Links[T any](resolver Resolver) render.NodeRenderers[T] {
	return render.NodeRenderers[T]{
		document.EntryHyperlink:      hyperlink[T](document.EntryHyperlink, resolver.ResolveEntry),
		document.AssetHyperlink:      hyperlink[T](document.AssetHyperlink, resolver.ResolveAsset),
		document.EmbeddedEntryInline: inlineEntry[T](resolver),
		document.EmbeddedEntryBlock:  blockEntry[T](resolver),
		document.EmbeddedAssetBlock:  blockAsset[T](resolver),
	}
}

type lookup func(id string) (Link, bool)

func hyperlink[T any](nodeType string, resolve lookup) render.NodeRenderer[T] {
	return func(h render.Factory[T], node *document.Node, key string, next render.Next[T]) (T, error) {
		link, ok := resolve(node.TargetID())
		if !ok {
			return render.Placeholder(h, nodeType, node, key), nil
		}
		children, err := next(node.Content)
		if err != nil {
			var zero T
			return zero, err
		}
		return h.Element("a", anchorProps(key, link), children...), nil
	}
}

func inlineEntry[T any](resolver Resolver) render.NodeRenderer[T] {
	return func(h render.Factory[T], node *document.Node, key string, _ render.Next[T]) (T, error) {
		link, ok := resolver.ResolveEntry(node.TargetID())
		if !ok {
			return render.Placeholder(h, document.EmbeddedEntryInline, node, key), nil
		}
		return h.Element("a", anchorProps(key, link), h.Text(link.Title)), nil
	}
}

func blockEntry[T any](resolver Resolver) render.NodeRenderer[T] {
	fallback := render.Container[T]("div")
	return func(h render.Factory[T], node *document.Node, key string, next render.Next[T]) (T, error) {
		link, ok := resolver.ResolveEntry(node.TargetID())
		if !ok {
			return fallback(h, node, key, next)
		}
		children, err := next(node.Content)
		if err != nil {
			var zero T
			return zero, err
		}
		title := h.Element("a", anchorProps(document.ChildKey(key, len(children)), link), h.Text(link.Title))
		props := render.Props{Key: key, Attrs: []render.Attr{{Name: "class", Value: "embedded-entry"}}}
		return h.Element("div", props, append(children, title)...), nil
	}
}

func blockAsset[T any](resolver Resolver) render.NodeRenderer[T] {
	return func(h render.Factory[T], node *document.Node, key string, _ render.Next[T]) (T, error) {
		link, ok := resolver.ResolveAsset(node.TargetID())
		if !ok {
			return render.Unrecognized(h, document.EmbeddedAssetBlock, key), nil
		}
		props := render.Props{Key: key, Attrs: []render.Attr{
			{Name: "src", Value: link.URL},
			{Name: "alt", Value: link.Title},
		}}
		return h.Element("img", props), nil
	}
}

func anchorProps(key string, link Link) render.Props {
	props := render.Props{Key: key, Attrs: []render.Attr{{Name: "href", Value: link.URL}}}
	if link.Title != "" {
		props.Attrs = append(props.Attrs, render.Attr{Name: "title", Value: link.Title})
	}
	return props
}
