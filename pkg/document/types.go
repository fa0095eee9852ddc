package document

import "encoding/json"

// Block node types.
const (
	Document           = "document"
	Paragraph          = "paragraph"
	Heading1           = "heading-1"
	Heading2           = "heading-2"
	Heading3           = "heading-3"
	Heading4           = "heading-4"
	Heading5           = "heading-5"
	Heading6           = "heading-6"
	OrderedList        = "ordered-list"
	UnorderedList      = "unordered-list"
	ListItem           = "list-item"
	HR                 = "hr"
	Quote              = "blockquote"
	EmbeddedEntryBlock = "embedded-entry-block"
	EmbeddedAssetBlock = "embedded-asset-block"
	Table              = "table"
	TableRow           = "table-row"
	TableCell          = "table-cell"
	TableHeaderCell    = "table-header-cell"
)

// Inline node types.
const (
	Hyperlink           = "hyperlink"
	EntryHyperlink      = "entry-hyperlink"
	AssetHyperlink      = "asset-hyperlink"
	EmbeddedEntryInline = "embedded-entry-inline"
)

// Text is the node type of text leaves.
const Text = "text"

// Mark types.
const (
	Bold        = "bold"
	Italic      = "italic"
	Underline   = "underline"
	Code        = "code"
	Superscript = "superscript"
	Subscript   = "subscript"
)

// Headings lists the heading node types by level, index 0 is heading-1.
var Headings = [6]string{Heading1, Heading2, Heading3, Heading4, Heading5, Heading6}

// Kind classifies a node by its structural shape.
type Kind int

const (
	// KindUnknown is a node that is neither a text leaf nor a container.
	KindUnknown Kind = iota
	// KindText is a text leaf carrying a value and marks.
	KindText
	// KindContainer is a node with a content list, possibly empty.
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Mark is a formatting decoration attached to a text leaf.
type Mark struct {
	Type string `json:"type" yaml:"type"`
}

// Node is one element of the document tree.
//
// Content is nil when the source had no content list, and non-nil (possibly
// empty) when it did. Value and Marks follow the same rule for text leaves.
type Node struct {
	NodeType string         `json:"nodeType" yaml:"nodeType"`
	Data     map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Content  []*Node        `json:"content,omitempty" yaml:"content,omitempty"`
	Value    *string        `json:"value,omitempty" yaml:"value,omitempty"`
	Marks    []Mark         `json:"marks,omitempty" yaml:"marks,omitempty"`
}

// Kind reports the structural classification of n. Void block types are no
// exception: an hr must carry an empty content list to be a container, and
// one that omits content is KindUnknown and renders as unrecognized.
func (n *Node) Kind() Kind {
	switch {
	case n == nil:
		return KindUnknown
	case n.NodeType == Text, n.Value != nil && n.Marks != nil:
		return KindText
	case n.Content != nil:
		return KindContainer
	default:
		return KindUnknown
	}
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool { return n.Kind() == KindText }

// Text returns the value of a text leaf, or "" when absent.
func (n *Node) Text() string {
	if n == nil || n.Value == nil {
		return ""
	}
	return *n.Value
}

// URI returns data.uri, used by hyperlinks.
func (n *Node) URI() string {
	if n == nil {
		return ""
	}
	s, _ := n.Data["uri"].(string)
	return s
}

// TargetID returns data.target.sys.id, the identifier of a linked entry or asset.
func (n *Node) TargetID() string {
	if n == nil {
		return ""
	}
	target, _ := n.Data["target"].(map[string]any)
	sys, _ := target["sys"].(map[string]any)
	id, _ := sys["id"].(string)
	return id
}

// WithContent returns a shallow copy of n whose content is replaced. n is not modified.
func (n *Node) WithContent(content []*Node) *Node {
	out := *n
	if content == nil {
		content = []*Node{}
	}
	out.Content = content
	return &out
}

// MarkTypes returns the mark tags of n in order.
func (n *Node) MarkTypes() []string {
	if n == nil || len(n.Marks) == 0 {
		return nil
	}
	out := make([]string, len(n.Marks))
	for i, m := range n.Marks {
		out[i] = m.Type
	}
	return out
}

// MarshalJSON keeps empty content and marks lists so that Kind survives a round trip.
func (n Node) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 5)
	m["nodeType"] = n.NodeType
	if n.Data != nil {
		m["data"] = n.Data
	}
	if n.Content != nil {
		m["content"] = n.Content
	}
	if n.Value != nil {
		m["value"] = *n.Value
	}
	if n.Marks != nil {
		m["marks"] = n.Marks
	}
	return json.Marshal(m)
}
