package config

// Config is the complete richtext configuration.
type Config struct {
	Render   RenderConfig   `koanf:"render" toml:"render"`
	HTML     HTMLConfig     `koanf:"html" toml:"html"`
	XML      XMLConfig      `koanf:"xml" toml:"xml"`
	Terminal TerminalConfig `koanf:"terminal" toml:"terminal"`
	Glamour  GlamourConfig  `koanf:"glamour" toml:"glamour"`
	Logging  LoggingConfig  `koanf:"logging" toml:"logging"`
}

// RenderConfig controls traversal and the default output format.
type RenderConfig struct {
	Format     string `koanf:"format" toml:"format"`
	KeyPrefix  string `koanf:"key_prefix" toml:"key_prefix"`
	MaxDepth   int    `koanf:"max_depth" toml:"max_depth"`
	Iterative  bool   `koanf:"iterative" toml:"iterative"`
	LineBreaks bool   `koanf:"line_breaks" toml:"line_breaks"`
	Links      string `koanf:"links" toml:"links"`
}

type HTMLConfig struct {
	EmitKeys bool `koanf:"emit_keys" toml:"emit_keys"`
}

type XMLConfig struct {
	EmitKeys bool `koanf:"emit_keys" toml:"emit_keys"`
	Indent   int  `koanf:"indent" toml:"indent"`
}

type TerminalConfig struct {
	Width int `koanf:"width" toml:"width"`
	// Theme is a YAML theme file for the terminal format.
	Theme string `koanf:"theme" toml:"theme"`
}

type GlamourConfig struct {
	// Style is a glamour style name or a JSON style file.
	Style string `koanf:"style" toml:"style"`
}

type LoggingConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}
