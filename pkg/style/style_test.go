package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"known tags", "[success]Copied [profile]Fabric[/profile].[/success]", "Copied Fabric."},
		{"unknown tags stay", "[1.20] [note]x[/note]", "[1.20] [note]x[/note]"},
		{"no tags", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.input))
		})
	}
}

func TestMarkupRender(t *testing.T) {
	out := Render("[profile]Fabric[/profile] has [mods]3 Mods[/mods]")
	assert.Contains(t, out, "Fabric")
	assert.Contains(t, out, "3 Mods")
	assert.NotContains(t, out, "[profile]")
	assert.NotContains(t, out, "[/mods]")
}

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("[bold]{{name}}[/bold]", map[string]string{"name": "Forge"})
	assert.Contains(t, out, "Forge")
	assert.NotContains(t, out, "{{name}}")
}

func TestMenuLine(t *testing.T) {
	assert.Equal(t, "1) Fabric (12 Mods)", MenuLine(1, "Fabric", 12, false))

	styled := MenuLine(2, "Forge", 0, true)
	for _, part := range []string{"2)", "Forge", "(0 Mods)"} {
		assert.True(t, strings.Contains(styled, part), "missing %q in %q", part, styled)
	}
}

func TestClearLine(t *testing.T) {
	assert.Equal(t, "0) Clear 3 files from directory (No profile selected)", ClearLine(3, false))
	assert.Contains(t, ClearLine(3, true), "Clear 3 files from directory")
}
