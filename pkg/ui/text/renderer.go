// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/style"
	"github.com/jakkoble/modhandler/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	styled bool
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// NewStyled creates a renderer that resolves style markup. The terminal
// renderer builds on it.
func NewStyled(output io.Writer) *Renderer {
	return &Renderer{output: output, styled: true}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.CatalogView:
		return r.renderCatalog(v)
	case *display.PathsView:
		return r.renderPaths(v)
	case *display.ApplyView:
		return r.renderApply(v)
	case *display.ClearView:
		return r.renderClear(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %s\n", errors.UserMessage(err))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.output, format, args...)
}

func (r *Renderer) markup(s string) string {
	if r.styled {
		return style.Render(s)
	}
	return style.StripMarkup(s)
}

func (r *Renderer) renderCatalog(v *display.CatalogView) error {
	if len(v.Profiles) == 0 {
		return r.RenderMessage("No profiles found.")
	}
	if v.ModsEntries > 0 {
		r.printf("%s\n", style.ClearLine(v.ModsEntries, r.styled))
	}
	for _, p := range v.Profiles {
		r.printf("%s\n", style.MenuLine(p.Number, p.Name, p.Mods, r.styled))
	}
	return nil
}

func (r *Renderer) renderPaths(v *display.PathsView) error {
	source := "default"
	if v.FromOverride {
		source = "override"
	}
	rows := [][2]string{
		{"root", v.Root},
		{"profiles", v.ProfilesDir},
		{"override file", v.OverrideFile},
		{"mods", v.ModsDir + " (" + source + ")"},
		{"config file", v.ConfigFile},
		{"log file", v.LogFile},
	}
	for _, row := range rows {
		r.printf("%-14s %s\n", row[0]+":", r.markup("[path]"+row[1]+"[/path]"))
	}
	return nil
}

func (r *Renderer) renderClear(v *display.ClearView) error {
	switch {
	case v.Missing:
		r.printf("%s\n", r.markup("[muted]Mods directory does not exist, nothing to clear.[/muted]"))
	case v.DryRun:
		r.printf("Would remove %d files and %d directories from %s\n", v.Files, v.Directories, v.ModsDir)
		for _, path := range v.Removed {
			r.printf("  %s\n", path)
		}
	default:
		r.printf("%s\n", r.markup("[success]Mods directory cleared.[/success]"))
	}
	return nil
}

func (r *Renderer) renderApply(v *display.ApplyView) error {
	if v.Cleared != nil {
		if err := r.renderClear(v.Cleared); err != nil {
			return err
		}
	}
	if v.DryRun {
		r.printf("Would copy %d files (%d bytes) from profile %s into %s\n", v.Files, v.Bytes, v.Profile, v.ModsDir)
		for _, path := range v.Planned {
			r.printf("  %s\n", path)
		}
		return nil
	}
	r.printf("%s\n", r.markup(fmt.Sprintf("[success]Copied %d files from [profile]%s[/profile].[/success]", v.Files, v.Profile)))
	return nil
}
