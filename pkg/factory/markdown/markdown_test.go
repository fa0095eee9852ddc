package markdown

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/render"
)

func renderMarkdown(t *testing.T, blocks ...*document.Node) string {
	t.Helper()
	nop := zerolog.Nop()
	out, err := render.Render[Fragment](NewFactory(), document.NewDocument(blocks...), render.Options[Fragment]{Logger: &nop})
	require.NoError(t, err)
	return String(out)
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		blocks   []*document.Node
		expected string
	}{
		{
			name:     "paragraph",
			blocks:   []*document.Node{document.NewNode(document.Paragraph, document.NewText("hello world"))},
			expected: "hello world\n",
		},
		{
			name: "heading and paragraph",
			blocks: []*document.Node{
				document.NewNode(document.Heading2, document.NewText("Title")),
				document.NewNode(document.Paragraph, document.NewText("body")),
			},
			expected: "## Title\n\nbody\n",
		},
		{
			name: "nested marks",
			blocks: []*document.Node{document.NewNode(document.Paragraph,
				document.NewText("hi", document.Bold, document.Italic),
				document.NewText(" "),
				document.NewText("x*y", document.Code),
			)},
			expected: "**_hi_** `x*y`\n",
		},
		{
			name: "marks keep surrounding spaces outside",
			blocks: []*document.Node{document.NewNode(document.Paragraph,
				document.NewText("a"),
				document.NewText(" b ", document.Bold, document.Italic),
				document.NewText("c"),
				document.NewText(" ", document.Bold),
				document.NewText("d", document.Code),
			)},
			expected: "a **_b_** c `d`\n",
		},
		{
			name:     "escaping",
			blocks:   []*document.Node{document.NewNode(document.Paragraph, document.NewText("a_b*c"))},
			expected: `a\_b\*c` + "\n",
		},
		{
			name: "unordered list",
			blocks: []*document.Node{document.NewNode(document.UnorderedList,
				document.NewNode(document.ListItem, document.NewNode(document.Paragraph, document.NewText("one"))),
				document.NewNode(document.ListItem, document.NewNode(document.Paragraph, document.NewText("two"))),
			)},
			expected: "- one\n- two\n",
		},
		{
			name: "ordered list with nested list",
			blocks: []*document.Node{document.NewNode(document.OrderedList,
				document.NewNode(document.ListItem,
					document.NewNode(document.Paragraph, document.NewText("first")),
					document.NewNode(document.UnorderedList,
						document.NewNode(document.ListItem, document.NewText("inner")),
					),
				),
				document.NewNode(document.ListItem, document.NewText("second")),
			)},
			expected: "1. first\n\n   - inner\n2. second\n",
		},
		{
			name: "quote",
			blocks: []*document.Node{document.NewNode(document.Quote,
				document.NewNode(document.Paragraph, document.NewText("a")),
				document.NewNode(document.Paragraph, document.NewText("b")),
			)},
			expected: "> a\n>\n> b\n",
		},
		{
			name:     "link and rule",
			blocks:   []*document.Node{document.NewNode(document.Paragraph, document.NewHyperlink("https://go.dev", document.NewText("Go"))), document.NewNode(document.HR)},
			expected: "[Go](https://go.dev)\n\n---\n",
		},
		{
			name: "table",
			blocks: []*document.Node{document.NewNode(document.Table,
				document.NewNode(document.TableRow,
					document.NewNode(document.TableHeaderCell, document.NewNode(document.Paragraph, document.NewText("k"))),
					document.NewNode(document.TableHeaderCell, document.NewNode(document.Paragraph, document.NewText("v"))),
				),
				document.NewNode(document.TableRow,
					document.NewNode(document.TableCell, document.NewNode(document.Paragraph, document.NewText("a|b"))),
				),
			)},
			expected: "| k | v |\n| --- | --- |\n| a\\|b |  |\n",
		},
		{
			name:     "diagnostic",
			blocks:   []*document.Node{document.NewNode("bogus")},
			expected: "(Unrecognized node type) bogus\n",
		},
		{
			name:     "empty",
			blocks:   nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderMarkdown(t, tt.blocks...))
		})
	}
}
