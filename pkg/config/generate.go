package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	rterrors "github.com/arthur-debert/richtext/pkg/errors"
)

// DefaultsContent returns the annotated embedded defaults file.
func DefaultsContent() string {
	return string(defaultConfig)
}

// Generate encodes cfg as TOML. With commented set every assignment is
// commented out, leaving a template that changes nothing when installed.
func Generate(cfg *Config, commented bool) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, rterrors.Wrap(err, rterrors.ErrInternal, "failed to encode configuration")
	}
	if commented {
		data = []byte(commentOutConfigValues(string(data)))
	}
	return data, nil
}

// commentOutConfigValues comments out every line that is not blank, a
// comment or a table header.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		default:
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}
