package help

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// Renderer formats raw topic content for the terminal.
type Renderer interface {
	Render(content string, format string) string
}

// Plain returns content unchanged.
type Plain struct{}

func (Plain) Render(content string, format string) string { return content }

// Markdown renders .md topics with glamour. Other formats pass through.
type Markdown struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path to
	// a style file. Empty means auto-detect.
	Style string
	// Width wraps output; 0 keeps glamour's default.
	Width int
}

// NewMarkdown picks a renderer for out: glamour when out is a terminal,
// Plain otherwise so piped help stays free of escape codes.
func NewMarkdown(out io.Writer) Renderer {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return &Markdown{}
	}
	return Plain{}
}

func (r *Markdown) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
