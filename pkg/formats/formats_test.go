package formats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/render/extensions"
)

func sampleDocument() *document.Node {
	return document.NewDocument(
		document.NewNode(document.Heading1, document.NewText("Notes")),
		document.NewNode(document.Paragraph,
			document.NewText("hello "),
			document.NewText("world", document.Bold),
		),
	)
}

func quiet() Options {
	nop := zerolog.Nop()
	return Options{Logger: &nop}
}

func TestBuiltinFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"glamour", "html", "json", "markdown", "terminal", "xml"}, Names())

	all := All()
	require.Len(t, all, 6)
	for _, f := range all {
		assert.NotEmpty(t, f.Description, f.Name)
		assert.NotNil(t, f.Render, f.Name)
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := Render("pdf", sampleDocument(), quiet())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatNotFound))
	assert.Equal(t, "pdf", errors.GetErrorDetails(err)["format"])
}

func TestRegisterDuplicate(t *testing.T) {
	err := Register(Format{Name: "html"})
	assert.Error(t, err)
}

func TestRenderEachFormat(t *testing.T) {
	tests := []struct {
		format   string
		opts     func(Options) Options
		contains []string
	}{
		{format: "html", contains: []string{"<h1>Notes</h1>", "<p>hello <strong>world</strong></p>"}},
		{
			format: "html",
			opts: func(o Options) Options {
				o.EmitKeys = true
				o.KeyPrefix = "doc"
				return o
			},
			contains: []string{`<h1 data-key="doc-0">`},
		},
		{format: "xml", contains: []string{"<richtext><h1>Notes</h1>"}},
		{format: "markdown", contains: []string{"# Notes\n\nhello **world**\n"}},
		{format: "terminal", contains: []string{"Notes\n\nhello world\n"}},
		{format: "glamour", contains: []string{"Notes", "hello", "world"}},
		{format: "json", contains: []string{`"key": "RichText--0"`, `"tag": "h1"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			opts := quiet()
			if tt.opts != nil {
				opts = tt.opts(opts)
			}
			out, err := Render(tt.format, sampleDocument(), opts)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestJSONIsValid(t *testing.T) {
	out, err := Render("json", sampleDocument(), quiet())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 2)
}

func TestFormatsShareExtensions(t *testing.T) {
	doc := document.NewDocument(document.NewNode(document.Paragraph,
		document.NewText("a\nb "),
		document.NewReference(document.EntryHyperlink, "post", document.NewText("post")),
	))
	opts := quiet()
	opts.LineBreaks = true
	opts.Resolver = extensions.MapResolver{Entries: map[string]extensions.Link{"post": {URL: "/p"}}}

	out, err := Render("html", doc, opts)
	require.NoError(t, err)
	assert.Equal(t, `<p>a<br>b <a href="/p">post</a></p>`, out)

	out, err = Render("markdown", doc, opts)
	require.NoError(t, err)
	assert.Equal(t, "a  \nb [post](/p)\n", out)
}

func TestGlamourStyleLeavesTerminalThemeAlone(t *testing.T) {
	opts := quiet()
	opts.GlamourStyle = "dark"

	out, err := Render("terminal", sampleDocument(), opts)
	require.NoError(t, err)
	assert.Contains(t, out, "Notes\n\nhello world\n")

	opts.GlamourStyle = "notty"
	out, err = Render("glamour", sampleDocument(), opts)
	require.NoError(t, err)
	assert.Contains(t, out, "Notes")

	opts = quiet()
	opts.Theme = "dark"
	_, err = Render("terminal", sampleDocument(), opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRenderErrorsPropagate(t *testing.T) {
	doc := document.NewDocument(document.NewNode(document.Paragraph, document.NewText("x", "sparkle")))
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			out, err := Render(name, doc, quiet())
			assert.Empty(t, strings.TrimSpace(out))
			assert.True(t, errors.IsErrorCode(err, errors.ErrMarkRendererMissing))
		})
	}
}
