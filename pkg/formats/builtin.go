package formats

import (
	"os"

	"github.com/beevik/etree"
	"github.com/charmbracelet/glamour"
	g "maragu.dev/gomponents"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/factory/html"
	"github.com/arthur-debert/richtext/pkg/factory/markdown"
	"github.com/arthur-debert/richtext/pkg/factory/terminal"
	"github.com/arthur-debert/richtext/pkg/factory/tree"
	"github.com/arthur-debert/richtext/pkg/factory/xml"
	"github.com/arthur-debert/richtext/pkg/registry"
	"github.com/arthur-debert/richtext/pkg/render"
)

func init() {
	for _, f := range []Format{
		{Name: "html", Description: "HTML fragment", Extension: ".html", Render: renderHTML},
		{Name: "xml", Description: "XML document with a richtext root", Extension: ".xml", Render: renderXML},
		{Name: "markdown", Description: "CommonMark text", Extension: ".md", Render: renderMarkdown},
		{Name: "terminal", Description: "styled text for terminals", Extension: ".txt", Render: renderTerminal},
		{Name: "glamour", Description: "markdown rendered for terminals by glamour", Extension: ".txt", Render: renderGlamour},
		{Name: "json", Description: "keyed element tree as JSON", Extension: ".json", Render: renderJSON},
	} {
		registry.MustRegister(formatRegistry(), f.Name, f)
	}
}

func renderHTML(doc *document.Node, opts Options) (string, error) {
	nodes, err := render.Render[g.Node](html.NewFactory(opts.EmitKeys), doc, renderOptions[g.Node](opts))
	if err != nil {
		return "", err
	}
	return html.String(nodes)
}

func renderXML(doc *document.Node, opts Options) (string, error) {
	tokens, err := render.Render[etree.Token](xml.NewFactory(opts.EmitKeys), doc, renderOptions[etree.Token](opts))
	if err != nil {
		return "", err
	}
	return xml.String(tokens, opts.Indent)
}

func renderMarkdown(doc *document.Node, opts Options) (string, error) {
	fragments, err := render.Render[markdown.Fragment](markdown.NewFactory(), doc, renderOptions[markdown.Fragment](opts))
	if err != nil {
		return "", err
	}
	return markdown.String(fragments), nil
}

func renderTerminal(doc *document.Node, opts Options) (string, error) {
	theme, err := terminal.LoadTheme(opts.Theme, terminal.NewRenderer(os.Stdout, opts.Color))
	if err != nil {
		return "", err
	}
	h := terminal.NewFactory(theme, opts.Width)
	fragments, err := render.Render[terminal.Fragment](h, doc, renderOptions[terminal.Fragment](opts))
	if err != nil {
		return "", err
	}
	return terminal.String(fragments), nil
}

func renderGlamour(doc *document.Node, opts Options) (string, error) {
	md, err := renderMarkdown(doc, opts)
	if err != nil {
		return "", err
	}

	var options []glamour.TermRendererOption
	switch {
	case opts.GlamourStyle != "":
		options = append(options, glamour.WithStylePath(opts.GlamourStyle))
	case opts.Color:
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStylePath("notty"))
	}
	if opts.Width > 0 {
		options = append(options, glamour.WithWordWrap(opts.Width))
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRenderOutput, "failed to create glamour renderer")
	}
	out, err := r.Render(md)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRenderOutput, "glamour failed to render markdown")
	}
	return out, nil
}

func renderJSON(doc *document.Node, opts Options) (string, error) {
	elements, err := render.Render[*tree.Element](tree.NewFactory(), doc, renderOptions[*tree.Element](opts))
	if err != nil {
		return "", err
	}
	data, err := tree.MarshalIndent(elements)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRenderOutput, "failed to encode element tree")
	}
	return string(data) + "\n", nil
}
