package output

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	// TerminalFormat is chosen for color-capable terminals.
	TerminalFormat = "terminal"
	// PipeFormat is chosen for pipes, files and NO_COLOR.
	PipeFormat = "html"
)

// ColorEnabled reports whether styled output should be written to out.
func ColorEnabled(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if out == nil || !IsTerminal(out) {
		return false
	}
	return termenv.NewOutput(out).ColorProfile() != termenv.Ascii
}

// IsTerminal reports whether out is a terminal.
func IsTerminal(out *os.File) bool {
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}

// DetectFormat picks the output format when none is configured.
func DetectFormat(out *os.File) string {
	if out != nil && IsTerminal(out) && os.Getenv("NO_COLOR") == "" {
		return TerminalFormat
	}
	return PipeFormat
}

// ResolveFormat returns configured unless it is empty or "auto".
func ResolveFormat(configured string, out *os.File) string {
	if configured == "" || configured == "auto" {
		return DetectFormat(out)
	}
	return configured
}
