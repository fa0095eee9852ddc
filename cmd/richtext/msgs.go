package richtext

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render rich-text documents to HTML, XML, markdown and the terminal"
	MsgRenderShort     = "Render a document"
	MsgInspectShort    = "Show the node tree and keys of a document"
	MsgFormatsShort    = "List output formats"
	MsgFormatsLong     = "Formats lists every output format render accepts for --format."
	MsgGenConfigShort  = "Print or write a configuration file"
	MsgGenConfigLong   = "Genconfig prints the effective configuration as TOML. With --write it is saved to the user configuration path."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = "Generate a shell completion script for bash, zsh, fish or powershell and print it to standard output."
	MsgManShort        = "Generate the man page"

	// Status messages
	MsgWroteOutput    = "Wrote %s output to %s\n"
	MsgWroteConfig    = "Wrote configuration to %s\n"
	MsgVersionFormat  = "richtext %s (commit %s, built %s)\n"
	MsgFormatItem     = "  %-10s %s\n"
	MsgAvailableTitle = "Available formats:"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrReadInput    = "failed to read %s: %w"
	MsgErrLoadLinks    = "failed to load links file %s: %w"
	MsgErrWriteOutput  = "failed to write %s: %w"
	MsgErrConfigExists = "%s already exists, use --force to overwrite"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Configuration file (default $XDG_CONFIG_HOME/richtext/config.toml)"
	MsgFlagFormat       = "Output format (see 'richtext formats')"
	MsgFlagOutput       = "Write output to a file instead of standard output"
	MsgFlagKeyPrefix    = "Key the top-level blocks hang off"
	MsgFlagMaxDepth     = "Fail on documents nested deeper than this, 0 for unlimited"
	MsgFlagIterative    = "Traverse on an explicit stack instead of recursing"
	MsgFlagLineBreaks   = "Render newlines inside text as line breaks"
	MsgFlagLinks        = "YAML file resolving entry and asset references"
	MsgFlagEmitKeys     = "Keep render keys in html and xml output"
	MsgFlagIndent       = "Pretty-print xml with this many spaces"
	MsgFlagWidth        = "Wrap terminal output at this width"
	MsgFlagTheme        = "YAML theme file for the terminal format"
	MsgFlagGlamourStyle = "Glamour style name or JSON style file"
	MsgFlagYAML         = "Read the input as YAML"
	MsgFlagSummary      = "Print only the summary"
	MsgFlagCommented    = "Comment out every setting"
	MsgFlagWrite        = "Write to the user configuration path"
	MsgFlagForce        = "Overwrite an existing file"
	MsgFlagPath         = "Where --write saves the file (default $XDG_CONFIG_HOME/richtext/config.toml)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)
)
