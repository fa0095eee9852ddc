// Package markdown renders documents to CommonMark text.
//
// Output nodes are Fragments: rendered text plus enough structure for
// parents that lay out their children (lists, quotes, tables).
package markdown

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/richtext/pkg/render"
)

// Fragment is a rendered piece of markdown. Block fragments end in a blank line.
type Fragment struct {
	Tag   string
	Text  string
	Cells []string
}

// Factory builds Fragments.
type Factory struct{}

var _ render.Factory[Fragment] = Factory{}

// NewFactory returns a markdown factory.
func NewFactory() Factory { return Factory{} }

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

// Text implements render.Factory.
func (Factory) Text(value string) Fragment {
	return Fragment{Text: escaper.Replace(value)}
}

// Element implements render.Factory.
func (Factory) Element(tag string, props render.Props, children ...Fragment) Fragment {
	inner := join(children)
	out := Fragment{Tag: tag}

	switch tag {
	case "p", "div":
		out.Text = block(inner)
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		out.Text = block(strings.Repeat("#", level) + " " + oneLine(inner))
	case "ul", "ol":
		out.Text = list(tag == "ol", children)
	case "li":
		out.Text = strings.TrimRight(inner, "\n")
	case "blockquote":
		out.Text = block(prefixLines(strings.TrimRight(inner, "\n"), "> ", "> "))
	case "hr":
		out.Text = block("---")
	case "table":
		out.Text = table(children)
	case "tr":
		for _, c := range children {
			out.Cells = append(out.Cells, c.Text)
		}
	case "td", "th":
		out.Text = strings.ReplaceAll(oneLine(inner), "|", `\|`)
	case "strong":
		out.Text = wrap(inner, "**")
	case "em":
		out.Text = wrap(inner, "_")
	case "code":
		out.Text = wrap(strings.NewReplacer(`\*`, "*", `\_`, "_", `\[`, "[", `\]`, "]", `\\`, `\`).Replace(inner), "`")
	case "u", "sup", "sub":
		out.Text = fmt.Sprintf("<%s>%s</%s>", tag, inner, tag)
	case "a":
		href, _ := props.Get("href")
		out.Text = fmt.Sprintf("[%s](%s)", inner, href)
	case "img":
		src, _ := props.Get("src")
		alt, _ := props.Get("alt")
		out.Text = block(fmt.Sprintf("![%s](%s)", alt, src))
	case "br":
		out.Text = "  \n"
	default:
		out.Text = inner
	}
	return out
}

// String joins a rendered sequence into a document ending in one newline.
func String(fragments []Fragment) string {
	s := strings.TrimRight(join(fragments), "\n")
	if s == "" {
		return ""
	}
	return s + "\n"
}

func join(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

func block(s string) string {
	return strings.TrimRight(s, "\n") + "\n\n"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "  \n", " ")), " ")
}

// wrap keeps surrounding whitespace outside delim; "** x**" is not emphasis.
func wrap(s, delim string) string {
	core := strings.TrimSpace(s)
	if core == "" {
		return s
	}
	start := strings.Index(s, core)
	return s[:start] + delim + core + delim + s[start+len(core):]
}

func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		p := rest
		if i == 0 {
			p = first
		}
		if line == "" && p == rest {
			lines[i] = strings.TrimRight(p, " ")
			continue
		}
		lines[i] = p + line
	}
	return strings.Join(lines, "\n")
}

func list(ordered bool, items []Fragment) string {
	var b strings.Builder
	for i, item := range items {
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		b.WriteString(prefixLines(item.Text, marker, strings.Repeat(" ", len(marker))))
		b.WriteByte('\n')
	}
	return block(b.String())
}

func table(rows []Fragment) string {
	if len(rows) == 0 {
		return ""
	}
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Cells))
	}
	var b strings.Builder
	for i, r := range rows {
		cells := make([]string, width)
		copy(cells, r.Cells)
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if i == 0 {
			sep := make([]string, width)
			for j := range sep {
				sep[j] = "---"
			}
			b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
		}
	}
	return block(b.String())
}
