package extensions_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/factory/tree"
	"github.com/arthur-debert/richtext/pkg/render"
	"github.com/arthur-debert/richtext/pkg/render/extensions"
)

func renderWith(t *testing.T, doc *document.Node, nodes render.NodeRenderers[*tree.Element], iterative bool) []*tree.Element {
	t.Helper()
	nop := zerolog.Nop()
	out, err := render.Render[*tree.Element](tree.NewFactory(), doc, render.Options[*tree.Element]{
		NodeRenderers: nodes,
		Iterative:     iterative,
		Logger:        &nop,
	})
	require.NoError(t, err)
	return out
}

func TestLineBreaks(t *testing.T) {
	tests := []struct {
		name     string
		node     *document.Node
		expected string
	}{
		{
			name:     "single newline",
			node:     document.NewNode(document.Paragraph, document.NewText("one\ntwo")),
			expected: "<p>one<br>two</p>",
		},
		{
			name:     "marks kept on segments",
			node:     document.NewNode(document.Heading1, document.NewText("a\nb", document.Bold)),
			expected: "<h1><strong>a</strong><br><strong>b</strong></h1>",
		},
		{
			name:     "empty segments dropped",
			node:     document.NewNode(document.ListItem, document.NewText("a\n\nb\n")),
			expected: "<li>a<br><br>b<br></li>",
		},
		{
			name:     "no newline",
			node:     document.NewNode(document.Paragraph, document.NewText("plain")),
			expected: "<p>plain</p>",
		},
		{
			name: "nested paragraph in quote",
			node: document.NewNode(document.Quote,
				document.NewNode(document.Paragraph, document.NewText("x\ny")),
			),
			expected: "<blockquote><p>x<br>y</p></blockquote>",
		},
	}

	for _, tt := range tests {
		for _, iterative := range []bool{false, true} {
			t.Run(tt.name, func(t *testing.T) {
				out := renderWith(t, document.NewDocument(tt.node), extensions.LineBreaks[*tree.Element](), iterative)
				assert.Equal(t, tt.expected, tree.Markup(out))
			})
		}
	}
}

func TestLineBreakKeysFollowExpandedContent(t *testing.T) {
	doc := document.NewDocument(document.NewNode(document.Paragraph, document.NewText("a\nb")))

	out := renderWith(t, doc, extensions.LineBreaks[*tree.Element](), false)

	br := out[0].Find("br")
	require.Len(t, br, 1)
	assert.Equal(t, "RichText--0-1", br[0].Key)
}

func TestSplitLinesReturnsInputWithoutNewlines(t *testing.T) {
	nodes := []*document.Node{document.NewText("a"), document.NewNode(document.Hyperlink)}
	out := extensions.SplitLines(nodes)
	assert.Same(t, &nodes[0], &out[0])
}

var resolver = extensions.MapResolver{
	Entries: map[string]extensions.Link{"post": {Title: "A Post", URL: "/posts/1"}},
	Assets:  map[string]extensions.Link{"logo": {Title: "Logo", URL: "/logo.png"}},
}

func TestLinksResolved(t *testing.T) {
	tests := []struct {
		name     string
		node     *document.Node
		expected string
	}{
		{
			name:     "entry hyperlink",
			node:     document.NewNode(document.Paragraph, document.NewReference(document.EntryHyperlink, "post", document.NewText("read"))),
			expected: `<p><a href="/posts/1" title="A Post">read</a></p>`,
		},
		{
			name:     "asset hyperlink",
			node:     document.NewNode(document.Paragraph, document.NewReference(document.AssetHyperlink, "logo", document.NewText("logo"))),
			expected: `<p><a href="/logo.png" title="Logo">logo</a></p>`,
		},
		{
			name:     "inline entry",
			node:     document.NewNode(document.Paragraph, document.NewReference(document.EmbeddedEntryInline, "post")),
			expected: `<p><a href="/posts/1" title="A Post">A Post</a></p>`,
		},
		{
			name:     "block entry",
			node:     document.NewReference(document.EmbeddedEntryBlock, "post"),
			expected: `<div class="embedded-entry"><a href="/posts/1" title="A Post">A Post</a></div>`,
		},
		{
			name:     "block asset",
			node:     document.NewReference(document.EmbeddedAssetBlock, "logo"),
			expected: `<img alt="Logo" src="/logo.png">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderWith(t, document.NewDocument(tt.node), extensions.Links[*tree.Element](resolver), false)
			assert.Equal(t, tt.expected, tree.Markup(out))
		})
	}
}

func TestLinksUnresolvedFallBack(t *testing.T) {
	doc := document.NewDocument(
		document.NewNode(document.Paragraph, document.NewReference(document.EntryHyperlink, "missing", document.NewText("x"))),
		document.NewReference(document.EmbeddedEntryBlock, "missing", document.NewText("body")),
		document.NewReference(document.EmbeddedAssetBlock, "missing"),
	)

	with := renderWith(t, doc, extensions.Links[*tree.Element](extensions.MapResolver{}), false)
	without := renderWith(t, doc, nil, false)

	assert.Equal(t, tree.Markup(without), tree.Markup(with))
	assert.Equal(t, "inline: entry-hyperlink, sys.id: missing", with[0].Children[0].TextContent())
}

func TestCombine(t *testing.T) {
	nodes := extensions.Combine(
		extensions.LineBreaks[*tree.Element](),
		extensions.Links[*tree.Element](resolver),
	)
	assert.Contains(t, nodes, extensions.Break)
	assert.Contains(t, nodes, document.EntryHyperlink)

	doc := document.NewDocument(document.NewNode(document.Paragraph,
		document.NewText("see\nthis "),
		document.NewReference(document.EntryHyperlink, "post", document.NewText("post")),
	))
	out := renderWith(t, doc, nodes, true)
	assert.Equal(t, `<p>see<br>this <a href="/posts/1" title="A Post">post</a></p>`, tree.Markup(out))
}

func TestLoadLinks(t *testing.T) {
	src := `
entries:
  post: {title: A Post, url: /posts/1}
assets:
  logo:
    title: Logo
    url: /logo.png
`
	m, err := extensions.LoadLinks(strings.NewReader(src))
	require.NoError(t, err)

	link, ok := m.ResolveEntry("post")
	assert.True(t, ok)
	assert.Equal(t, "/posts/1", link.URL)
	link, ok = m.ResolveAsset("logo")
	assert.True(t, ok)
	assert.Equal(t, "Logo", link.Title)
	_, ok = m.ResolveAsset("post")
	assert.False(t, ok)

	empty, err := extensions.LoadLinks(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Entries)

	_, err = extensions.LoadLinks(strings.NewReader("entries: [1, 2"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
