package render_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/factory/tree"
	"github.com/arthur-debert/richtext/pkg/render"
)

// Run with -race: one Renderer and its Walker are shared by every goroutine.
func TestSharedRendererConcurrentUse(t *testing.T) {
	doc := document.NewDocument(
		document.NewNode(document.Heading2, document.NewText("Title", document.Bold)),
		document.NewNode(document.Paragraph,
			document.NewText("plain "),
			document.NewText("both", document.Bold, document.Italic),
		),
		document.NewNode(document.UnorderedList,
			document.NewNode(document.ListItem, document.NewNode(document.Paragraph, document.NewText("item"))),
		),
		document.NewNode("bogus"),
	)

	nop := zerolog.Nop()
	r := render.New[*tree.Element](tree.NewFactory(), render.Options[*tree.Element]{
		Logger: &nop,
		NodeRenderers: render.NodeRenderers[*tree.Element]{
			document.Heading2: func(h render.Factory[*tree.Element], node *document.Node, key string, next render.Next[*tree.Element]) (*tree.Element, error) {
				children, err := next(node.Content)
				if err != nil {
					return nil, err
				}
				return h.Element("h3", render.Props{Key: key}, children...), nil
			},
		},
	})

	want, err := r.Render(doc)
	require.NoError(t, err)
	wantMarkup := tree.Markup(want)

	const goroutines, rounds = 16, 200
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				var (
					out []*tree.Element
					err error
				)
				if (g+i)%2 == 0 {
					out, err = r.Render(doc)
				} else {
					out, err = r.Walker().RenderNodeListIterative(doc.Content, render.DefaultKeyPrefix)
				}
				if !assert.NoError(t, err) || !assert.Equal(t, wantMarkup, tree.Markup(out)) {
					return
				}
			}
		}(g)
	}
	wg.Wait()
}
