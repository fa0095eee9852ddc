/*
Package render turns a document tree into a sequence of host output nodes.

The host supplies a Factory, the only way output is ever constructed. Node
renderers and mark renderers are looked up by tag in two registries; the
compiled-in defaults can be overridden per tag for each render call.

	h := html.NewFactory()
	nodes, err := render.Render(h, doc, render.Options[gomponents.Node]{
		NodeRenderers: render.NodeRenderers[gomponents.Node]{
			document.EntryHyperlink: func(h render.Factory[gomponents.Node], n *document.Node, key string, next render.Next[gomponents.Node]) (gomponents.Node, error) {
				children, err := next(n.Content)
				if err != nil {
					return nil, err
				}
				return h.Element("a", render.Props{Key: key, Attrs: []render.Attr{{Name: "href", Value: "/entries/" + n.TargetID()}}}, children...), nil
			},
		},
	})

# Keys

Every output node receives a positional key: the parent key, "-", and the
child index. Top-level nodes hang off the key prefix ("RichText-" unless
overridden), so the first block is "RichText--0". Marks wrapping a text leaf
take the text key plus the fold index, innermost first.

# Marks

Marks fold in array order, outermost first: [bold, italic] on "Hello" gives
bold(italic("Hello")). A mark with no registered renderer fails the render
with an errors.ErrMarkRendererMissing error.

# Degradation

Unknown node types render a div reading "(Unrecognized node type) <tag>"
("empty" when the tag is missing) and rendering continues with the siblings.
A walker without a node registry renders one div per node reading
"<key> ;lost nodeRenderer". Inline entry and asset references render a
visible placeholder until the host overrides them.

# Depth

Walker.RenderNodeList recurses once per nesting level. Options.MaxDepth bounds
it, and Options.Iterative switches to an explicit-stack traversal that keeps
the same keys, ordering and error behaviour.
*/
package render
