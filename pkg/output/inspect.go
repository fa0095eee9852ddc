package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/render"
)

// Summary counts what a document holds.
type Summary struct {
	Nodes    int
	Texts    int
	MaxDepth int
	Types    map[string]int
	Marks    map[string]int
	// Unrecognized lists the keys of nodes the default renderers turn into diagnostics.
	Unrecognized []string
}

// Summarize walks doc once.
func Summarize(doc *document.Node, keyPrefix string) Summary {
	s := Summary{Types: map[string]int{}, Marks: map[string]int{}}
	known := render.DefaultNodeRenderers[string]()

	_ = document.Walk(doc, keyPrefix, func(n *document.Node, key string, depth int) error {
		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, depth)
		if n.IsText() {
			s.Texts++
			for _, m := range n.MarkTypes() {
				s.Marks[m]++
			}
			return nil
		}
		tag := ""
		if n != nil {
			tag = n.NodeType
		}
		s.Types[tag]++
		if n.Kind() != document.KindContainer || !known.Has(tag) {
			s.Unrecognized = append(s.Unrecognized, key)
		}
		return nil
	})
	return s
}

// label describes one node on a line.
func label(n *document.Node, key string) string {
	switch {
	case n == nil:
		return key + " <nil>"
	case n.IsText():
		text := strconv.Quote(n.Text())
		if marks := n.MarkTypes(); len(marks) > 0 {
			text += " [" + strings.Join(marks, ", ") + "]"
		}
		return key + " text " + text
	case n.Kind() != document.KindContainer:
		return fmt.Sprintf("%s %s (%s)", key, displayType(n.NodeType), n.Kind())
	default:
		out := key + " " + displayType(n.NodeType)
		if uri := n.URI(); uri != "" {
			out += " -> " + uri
		}
		if id := n.TargetID(); id != "" {
			out += " #" + id
		}
		return out
	}
}

func displayType(t string) string {
	if t == "" {
		return "<empty>"
	}
	return t
}

// Tree renders the node structure of doc, one line per node with its key.
func Tree(doc *document.Node, keyPrefix string) (string, error) {
	list := pterm.LeveledList{{Level: 0, Text: "document"}}
	_ = document.Walk(doc, keyPrefix, func(n *document.Node, key string, depth int) error {
		list = append(list, pterm.LeveledListItem{Level: depth, Text: label(n, key)})
		return nil
	})
	root := putils.TreeFromLeveledList(list)
	return pterm.DefaultTree.WithRoot(root).Srender()
}

// SummaryTable renders s as a table.
func SummaryTable(s Summary) (string, error) {
	data := pterm.TableData{
		{"Metric", "Value"},
		{"nodes", strconv.Itoa(s.Nodes)},
		{"text leaves", strconv.Itoa(s.Texts)},
		{"max depth", strconv.Itoa(s.MaxDepth)},
	}
	for _, t := range sortedKeys(s.Types) {
		data = append(data, []string{"node " + displayType(t), strconv.Itoa(s.Types[t])})
	}
	for _, m := range sortedKeys(s.Marks) {
		data = append(data, []string{"mark " + m, strconv.Itoa(s.Marks[m])})
	}
	if len(s.Unrecognized) > 0 {
		data = append(data, []string{"unrecognized", strings.Join(s.Unrecognized, " ")})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
