package ui

import (
	"os"
	"strings"

	"github.com/jakkoble/modhandler/pkg/errors"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how the non-interactive commands print their views
type Format int

const (
	// FormatAuto picks terminal or text from the output stream
	FormatAuto Format = iota
	// FormatTerminal colors menu lines and paths with lipgloss
	FormatTerminal
	// FormatText prints the same layout with markup stripped
	FormatText
	FormatJSON
	FormatYAML
)

// String returns the --format spelling
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat reads a --format flag value; aliases like "yml" are accepted
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "Unknown format %q.", s)
	}
}

// DetectFormat resolves FormatAuto for output. Anything other than a color
// terminal without NO_COLOR gets plain text.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// IsStyled reports whether output to f should carry colors
func IsStyled(f *os.File) bool {
	return DetectFormat(f) == FormatTerminal
}
