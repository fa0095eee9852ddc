package document

// NewDocument creates a document root holding blocks.
func NewDocument(blocks ...*Node) *Node {
	return NewNode(Document, blocks...)
}

// NewNode creates a container node. The content list is never nil.
func NewNode(nodeType string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		NodeType: nodeType,
		Data:     map[string]any{},
		Content:  children,
	}
}

// NewText creates a text leaf with marks applied in order, outermost first.
func NewText(value string, marks ...string) *Node {
	ms := make([]Mark, 0, len(marks))
	for _, m := range marks {
		ms = append(ms, Mark{Type: m})
	}
	return &Node{
		NodeType: Text,
		Data:     map[string]any{},
		Value:    &value,
		Marks:    ms,
	}
}

// NewHyperlink creates a hyperlink pointing at uri.
func NewHyperlink(uri string, children ...*Node) *Node {
	n := NewNode(Hyperlink, children...)
	n.Data["uri"] = uri
	return n
}

// NewReference creates a node of nodeType linking to the entry or asset id,
// stored under data.target.sys.id.
func NewReference(nodeType, id string, children ...*Node) *Node {
	n := NewNode(nodeType, children...)
	n.Data["target"] = map[string]any{
		"sys": map[string]any{
			"id": id,
		},
	}
	return n
}
