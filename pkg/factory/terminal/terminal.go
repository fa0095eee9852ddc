// Package terminal renders documents as styled text for an ANSI terminal.
// Styles come from a Theme; with an ASCII color profile the output is plain
// text with the same layout.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/richtext/pkg/render"
)

// DefaultWidth is the rule width used when no wrap width is set.
const DefaultWidth = 40

// Fragment is a piece of rendered terminal text. Blocks end in a blank line.
type Fragment struct {
	Text  string
	Cells []string
}

// Factory builds Fragments.
type Factory struct {
	theme *Theme
	width int
}

var _ render.Factory[Fragment] = Factory{}

// NewFactory returns a terminal factory. A positive width wraps paragraphs.
func NewFactory(theme *Theme, width int) Factory {
	return Factory{theme: theme, width: width}
}

// NewRenderer returns a lipgloss renderer for w. Without color the ASCII
// profile is forced and styles render as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	if color {
		return lipgloss.NewRenderer(w)
	}
	return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
}

// Text implements render.Factory.
func (Factory) Text(value string) Fragment {
	return Fragment{Text: value}
}

// Element implements render.Factory.
func (f Factory) Element(tag string, props render.Props, children ...Fragment) Fragment {
	inner := join(children)
	out := Fragment{}

	switch tag {
	case "p", "div":
		out.Text = block(f.wrap(inner))
	case "h1", "h2", "h3", "h4", "h5", "h6":
		out.Text = block(f.style(tag, oneLine(inner)))
	case "blockquote":
		out.Text = block(f.style(tag, prefixLines(strings.TrimRight(inner, "\n"), "│ ", "│ ")))
	case "ul", "ol":
		out.Text = block(f.list(tag == "ol", children))
	case "li":
		out.Text = strings.TrimRight(inner, "\n")
	case "hr":
		out.Text = block(f.style(tag, strings.Repeat("─", f.ruleWidth())))
	case "table":
		out.Text = block(f.table(children))
	case "tr":
		for _, c := range children {
			out.Cells = append(out.Cells, c.Text)
		}
	case "td":
		out.Text = oneLine(inner)
	case "th":
		out.Text = f.style(tag, oneLine(inner))
	case "a":
		href, _ := props.Get("href")
		out.Text = f.style(tag, inner)
		if href != "" && href != inner {
			out.Text += " " + f.style("href", "<"+href+">")
		}
	case "img":
		src, _ := props.Get("src")
		alt, _ := props.Get("alt")
		out.Text = block(fmt.Sprintf("[image: %s] %s", alt, f.style("href", "<"+src+">")))
	case "br":
		out.Text = "\n"
	default:
		out.Text = f.style(tag, inner)
	}
	return out
}

// String joins a rendered sequence, ending in one newline.
func String(fragments []Fragment) string {
	s := strings.TrimRight(join(fragments), "\n")
	if s == "" {
		return ""
	}
	return s + "\n"
}

func (f Factory) style(name, s string) string {
	if s == "" || f.theme == nil {
		return s
	}
	return trimLines(f.theme.Style(name).Render(s))
}

func (f Factory) wrap(s string) string {
	s = strings.TrimRight(s, "\n")
	if f.width <= 0 || f.theme == nil {
		return s
	}
	return trimLines(f.theme.Renderer().NewStyle().Width(f.width).Render(s))
}

func (f Factory) ruleWidth() int {
	if f.width > 0 {
		return f.width
	}
	return DefaultWidth
}

func (f Factory) list(ordered bool, items []Fragment) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		marker := "•"
		if ordered {
			marker = fmt.Sprintf("%d.", i+1)
		}
		// The separating space stays outside the style, which trims trailing blanks.
		indent := strings.Repeat(" ", lipgloss.Width(marker)+1)
		lines = append(lines, prefixLines(item.Text, f.style("bullet", marker)+" ", indent))
	}
	return strings.Join(lines, "\n")
}

func (f Factory) table(rows []Fragment) string {
	var widths []int
	for _, r := range rows {
		for i, c := range r.Cells {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for n, r := range rows {
		cells := make([]string, len(widths))
		for i := range widths {
			c := ""
			if i < len(r.Cells) {
				c = r.Cells[i]
			}
			cells[i] = c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " │ "), " "))
		if n == 0 && len(rows) > 1 {
			sep := make([]string, len(widths))
			for i, w := range widths {
				sep[i] = strings.Repeat("─", w)
			}
			lines = append(lines, strings.Join(sep, "─┼─"))
		}
	}
	return strings.Join(lines, "\n")
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
	return strings.Join(strings.Fields(s), " ")
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		p := rest
		if i == 0 {
			p = first
		}
		if line == "" && i > 0 {
			lines[i] = strings.TrimRight(p, " ")
			continue
		}
		lines[i] = p + line
	}
	return strings.Join(lines, "\n")
}
