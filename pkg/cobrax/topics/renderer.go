package topics

import (
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// Renderer turns a topic's raw content into what is printed. ext is the
// topic file's extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// GlamourRenderer renders markdown topics. Other extensions pass through.
type GlamourRenderer struct {
	// Style is a glamour style name or path. Empty picks "notty" when stdout
	// is not a terminal or NO_COLOR is set, and auto detection otherwise.
	Style string
	// Width wraps at the given column; 0 keeps glamour's default
	Width int

	once     sync.Once
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a markdown renderer that adapts to stdout
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	r.once.Do(func() {
		var options []glamour.TermRendererOption
		if style := r.style(); style == "auto" {
			options = append(options, glamour.WithAutoStyle())
		} else {
			options = append(options, glamour.WithStylePath(style))
		}
		if r.Width > 0 {
			options = append(options, glamour.WithWordWrap(r.Width))
		}
		if tr, err := glamour.NewTermRenderer(options...); err == nil {
			r.renderer = tr
		}
	})
	if r.renderer == nil {
		return content
	}

	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (r *GlamourRenderer) style() string {
	if r.Style != "" {
		return r.Style
	}
	if os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		return "notty"
	}
	return "auto"
}
