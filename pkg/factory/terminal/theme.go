package terminal

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/richtext/pkg/errors"
)

// ColorDef is an adaptive color.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is one named style. Foreground and Background name a color.
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Faint        bool   `yaml:"faint,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// ThemeDef is the YAML form of a Theme.
type ThemeDef struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Theme maps element tags to lipgloss styles bound to one renderer.
type Theme struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

//go:embed theme.yaml
var defaultTheme []byte

// DefaultTheme returns the built-in theme for r.
func DefaultTheme(r *lipgloss.Renderer) *Theme {
	theme, err := ParseTheme(defaultTheme, r)
	if err != nil {
		// the embedded theme is covered by tests
		panic(err)
	}
	return theme
}

// LoadTheme reads a theme file. An empty path yields the default theme.
func LoadTheme(path string, r *lipgloss.Renderer) (*Theme, error) {
	if path == "" {
		return DefaultTheme(r), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "failed to read theme %s", path).
			WithDetail("path", path)
	}
	return ParseTheme(data, r)
}

// ParseTheme builds a theme from YAML.
func ParseTheme(data []byte, r *lipgloss.Renderer) (*Theme, error) {
	var def ThemeDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse theme")
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(def.Colors))
	for name, c := range def.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
	}

	theme := &Theme{renderer: r, styles: make(map[string]lipgloss.Style, len(def.Styles))}
	for name, s := range def.Styles {
		theme.styles[name] = buildStyle(r.NewStyle(), s, colors)
	}
	return theme, nil
}

func buildStyle(style lipgloss.Style, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}
	if c, ok := colors[def.Foreground]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colors[def.Background]; ok {
		style = style.Background(c)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}
	return style
}

// Style returns the named style, or a plain one.
func (t *Theme) Style(name string) lipgloss.Style {
	if s, ok := t.styles[name]; ok {
		return s
	}
	return t.renderer.NewStyle()
}

// Has reports whether the theme defines name.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Renderer returns the lipgloss renderer the theme is bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}
