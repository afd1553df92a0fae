package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tags maps markup tag names to styles. Text is marked up as [tag]...[/tag].
var tags = map[string]lipgloss.Style{
	"success": SuccessStyle,
	"error":   ErrorStyle,
	"warning": WarningStyle,
	"muted":   MutedStyle,
	"path":    PathStyle,
	"bold":    lipgloss.NewStyle().Bold(true),
	"profile": ProfileStyle,
	"mods":    ModCountStyle,
	"number":  MenuNumberStyle,
}

var (
	tagPattern  = regexp.MustCompile(`\[/?[a-z_]+\]`)
	tagPatterns = compileTags()
)

func compileTags() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(tags))
	for tag := range tags {
		patterns[tag] = regexp.MustCompile(`\[` + tag + `\](.*?)\[/` + tag + `\]`)
	}
	return patterns
}

// Render resolves markup tags into terminal styles. Nested tags are handled
// by repeating until nothing changes.
func Render(text string) string {
	for {
		before := text
		for tag, pattern := range tagPatterns {
			style := tags[tag]
			text = pattern.ReplaceAllStringFunc(text, func(match string) string {
				return style.Render(pattern.FindStringSubmatch(match)[1])
			})
		}
		if text == before {
			return text
		}
	}
}

// RenderTemplate substitutes {{key}} placeholders, then renders markup.
// Values are inserted before rendering, so they must not contain tags.
func RenderTemplate(template string, vars map[string]string) string {
	for key, value := range vars {
		template = strings.ReplaceAll(template, "{{"+key+"}}", value)
	}
	return Render(template)
}

// StripMarkup removes known markup tags and leaves the text untouched
func StripMarkup(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		if _, ok := tags[strings.Trim(tag, "[]/")]; ok {
			return ""
		}
		return tag
	})
}
