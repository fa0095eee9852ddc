/*
Package document models the portable rich-text tree consumed by the renderer.

A document is a tree of Nodes. Every node carries a nodeType tag and an
optional data bag. Container nodes hold an ordered content list; text leaves
hold a value and an ordered list of marks instead. A node counts as text when
its nodeType is "text" or when it has both a value and a marks list; this is
reported by Kind.

# Decoding

	doc, err := document.DecodeString(`{"nodeType":"document","content":[...]}`)
	doc, err := document.DecodeYAML(reader)

Decoding performs only minimal shape checks (objects where nodes are
expected, string tags, mark lists of objects). Errors carry the path of the
offending value:

	var dErr *document.Error
	if errors.As(err, &dErr) {
		fmt.Println(dErr.Path) // e.g. "content[2].marks[0].type"
	}

A JSON null decodes to a nil document. A bare JSON array is accepted as the
content of an implicit document node.

# Building

	doc := document.NewDocument(
		document.NewNode(document.Paragraph,
			document.NewText("hello ", document.Bold),
			document.NewText("world"),
		),
	)
*/
package document
