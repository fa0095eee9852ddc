// Package extensions holds host-side renderer overrides built only on the
// public override mechanism of package render.
//
// LineBreaks turns newlines inside text values into "break" nodes rendered
// as br elements. Links resolves entry and asset references through a
// Resolver, falling back to the default rendering when a target is unknown.
//
//	nodes := extensions.Combine(
//		extensions.LineBreaks[*tree.Element](),
//		extensions.Links[*tree.Element](resolver),
//	)
//	out, err := render.Render(h, doc, render.Options[*tree.Element]{NodeRenderers: nodes})
package extensions
