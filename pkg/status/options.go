package status

import "github.com/arthur-debert/pipelog/pkg/style"

// Defaults applied when Settings leaves a field at its zero value.
const (
	DefaultCounterWidth = 2
	DefaultSeparator    = " > "
	DefaultFill         = "*"
	DefaultHeaderWidth  = 80
)

// Settings holds the defaults a Renderer applies to every print call.
type Settings struct {
	// CounterWidth is the minimum digit width of the message counter.
	// Default: 2
	CounterWidth int

	// LeftOffset is the default left margin in spaces.
	LeftOffset int

	// Bold and Color are the default format.
	Bold  bool
	Color style.Color

	// StartInline leaves every line open for redraws unless overridden.
	StartInline bool

	// PrecedingLine prints a blank line before every line unless overridden.
	PrecedingLine bool

	// Separator joins appended segments.
	// Default: " > "
	Separator string
}

func (s Settings) withDefaults() Settings {
	if s.CounterWidth <= 0 {
		s.CounterWidth = DefaultCounterWidth
	}
	if s.Separator == "" {
		s.Separator = DefaultSeparator
	}
	if s.LeftOffset < 0 {
		s.LeftOffset = 0
	}
	return s
}

// Options is the fully resolved configuration of a single print call.
// Values start from the Renderer's Settings and are overridden by Option
// functions; nothing here outlives the call.
type Options struct {
	Bold  bool
	Color style.Color

	// LeftOffset is the margin prepended before formatting.
	LeftOffset int

	// StartInline ends the line without a newline so it can be redrawn.
	StartInline bool

	// PrecedingLine writes a blank line first.
	PrecedingLine bool

	// CounterReset restarts the visible count at 1 (Numbered only).
	CounterReset bool

	// Separator is placed before an appended segment (Append only).
	Separator string

	// InPlace draws an appended segment without remembering it, so the
	// next Append starts from the same baseline (Append only).
	InPlace bool

	// TargetColumn aligns an appended segment at a visible column.
	// Negative means append right after the current line (Append only).
	TargetColumn int

	// Fill and Width shape a banner (Header only).
	Fill  string
	Width int
}

// Option overrides one field of Options for a single call.
type Option func(*Options)

// WithBold sets the bold flag.
func WithBold(bold bool) Option {
	return func(o *Options) { o.Bold = bold }
}

// WithColor sets the color; style.None removes it.
func WithColor(c style.Color) Option {
	return func(o *Options) { o.Color = c }
}

// WithLeftOffset sets the left margin.
func WithLeftOffset(n int) Option {
	return func(o *Options) { o.LeftOffset = n }
}

// Inline leaves the line open for redraws.
func Inline() Option {
	return WithStartInline(true)
}

// WithStartInline sets whether the line is left open for redraws.
func WithStartInline(v bool) Option {
	return func(o *Options) { o.StartInline = v }
}

// WithPrecedingLine sets whether a blank line is written first.
func WithPrecedingLine(v bool) Option {
	return func(o *Options) { o.PrecedingLine = v }
}

// WithCounterReset restarts the count at 1.
func WithCounterReset() Option {
	return func(o *Options) { o.CounterReset = true }
}

// WithSeparator sets the separator used by Append.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// InPlace makes an Append transient.
func InPlace() Option {
	return func(o *Options) { o.InPlace = true }
}

// AtColumn aligns an appended segment at the given visible column.
func AtColumn(col int) Option {
	return func(o *Options) { o.TargetColumn = col }
}

// WithFill sets the banner fill string.
func WithFill(fill string) Option {
	return func(o *Options) { o.Fill = fill }
}

// WithWidth sets the banner width.
func WithWidth(width int) Option {
	return func(o *Options) { o.Width = width }
}
