package status

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/pipelog/pkg/logging"
	"github.com/arthur-debert/pipelog/pkg/style"
	"github.com/rs/zerolog"
)

type flusher interface {
	Flush() error
}

// Renderer writes status lines and keeps the memory needed to redraw the
// current one.
type Renderer struct {
	out      io.Writer
	settings Settings
	log      zerolog.Logger

	counter  int
	total    int
	lastLine string
	inline   bool

	// blank is set while the open line holds only in-place segments, so
	// lastLine still belongs to a finished line.
	blank bool
}

// New creates a Renderer writing to w.
func New(w io.Writer, s Settings) *Renderer {
	return &Renderer{
		out:      w,
		settings: s.withDefaults(),
		log:      logging.GetLogger("status"),
	}
}

// Settings returns the defaults in effect.
func (r *Renderer) Settings() Settings { return r.settings }

// Counter is the number shown on the last numbered line.
func (r *Renderer) Counter() int { return r.counter }

// Total counts every numbered line ever printed, resets included.
func (r *Renderer) Total() int { return r.total }

// LastLine is the last rendered line, escapes included.
func (r *Renderer) LastLine() string { return r.lastLine }

// InlineActive reports whether the cursor is still on an open line.
func (r *Renderer) InlineActive() bool { return r.inline }

func (r *Renderer) resolve(opts []Option) Options {
	o := Options{
		Bold:          r.settings.Bold,
		Color:         r.settings.Color,
		LeftOffset:    r.settings.LeftOffset,
		StartInline:   r.settings.StartInline,
		PrecedingLine: r.settings.PrecedingLine,
		Separator:     r.settings.Separator,
		TargetColumn:  -1,
		Fill:          DefaultFill,
		Width:         DefaultHeaderWidth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Print writes msg as a new line.
func (r *Renderer) Print(msg string, opts ...Option) error {
	return r.render(msg, r.resolve(opts))
}

// render is the line state machine shared by every non-appending print.
func (r *Renderer) render(msg string, o Options) error {
	if o.PrecedingLine {
		if err := r.write("\n"); err != nil {
			return err
		}
	}

	r.blank = false
	if r.inline {
		r.inline = false
		r.log.Trace().Msg("closing inline line")
		if err := r.write("\n"); err != nil {
			return err
		}
	}

	line := style.Compose(strings.Repeat(" ", max(o.LeftOffset, 0))+msg, o.Bold, o.Color)
	r.lastLine = line

	if o.StartInline {
		r.inline = true
		r.log.Trace().Str("line", style.Strip(line)).Msg("inline line started")
		return r.redraw(line)
	}
	return r.write(line + "\n")
}

// Numbered prints msg behind the next counter value, right-aligned to
// the counter width.
func (r *Renderer) Numbered(msg string, opts ...Option) error {
	o := r.resolve(opts)
	if o.CounterReset {
		r.counter = 1
	} else {
		r.counter++
	}
	r.total++
	return r.render(fmt.Sprintf("%*d. %s", r.settings.CounterWidth, r.counter, msg), o)
}

// Offset prints msg indented under the text of numbered lines. An explicit
// WithLeftOffset wins over the default indentation.
func (r *Renderer) Offset(msg string, opts ...Option) error {
	indent := WithLeftOffset(r.settings.CounterWidth + 2)
	return r.render(msg, r.resolve(append([]Option{indent}, opts...)))
}

// Append extends the open line with segment and redraws it.
//
// Without AtColumn the segment follows the current line after the
// separator. With AtColumn the line is first padded with spaces up to that
// visible column; a line already past it gets no padding. Escape sequences
// never count toward the column.
//
// Appending while no line is open starts from an empty line. An in-place
// append never touches the line memory, even when it opens the line.
func (r *Renderer) Append(segment string, opts ...Option) error {
	o := r.resolve(opts)

	baseline := r.lastLine
	if !r.inline || r.blank {
		baseline = ""
	}

	pad := 0
	if o.TargetColumn >= 0 {
		pad = max(o.TargetColumn-style.VisibleLen(baseline), 0)
	}

	line := baseline + strings.Repeat(" ", pad) + o.Separator + style.Compose(segment, o.Bold, o.Color)
	if o.InPlace {
		r.blank = r.blank || !r.inline
	} else {
		r.lastLine = line
		r.blank = false
	}
	r.inline = true
	return r.redraw(line)
}

// Header prints a banner: header centered between runs of the fill
// string, preceded by a blank line. Odd leftover width is dropped, and a
// header wider than the banner just gets no fill.
func (r *Renderer) Header(header string, opts ...Option) error {
	o := r.resolve(opts)
	fill := o.Fill
	if fill == "" {
		fill = DefaultFill
	}

	fillLen := max((o.Width-utf8.RuneCountInString(header)-2)/2, 0)
	side := strings.Repeat(fill, fillLen)
	return r.render("\n"+side+" "+header+" "+side, o)
}

// InlineEnd closes an open line. It does nothing when no line is open.
func (r *Renderer) InlineEnd() error {
	r.blank = false
	if !r.inline {
		return nil
	}
	r.inline = false
	return r.write("\n")
}

// Reset closes any open line and clears the counter and memory.
// Total is kept.
func (r *Renderer) Reset() error {
	err := r.InlineEnd()
	r.counter = 0
	r.lastLine = ""
	return err
}

func (r *Renderer) redraw(line string) error {
	if err := r.write("\r" + line); err != nil {
		return err
	}
	if f, ok := r.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.out, s)
	return err
}
