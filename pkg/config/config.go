package config

import (
	"github.com/arthur-debert/pipelog/pkg/errors"
	"github.com/arthur-debert/pipelog/pkg/status"
	"github.com/arthur-debert/pipelog/pkg/style"
)

// Config is the complete pipelog configuration.
type Config struct {
	Renderer Renderer `koanf:"renderer" yaml:"renderer" toml:"renderer"`
	Header   Header   `koanf:"header" yaml:"header" toml:"header"`
	Audit    Audit    `koanf:"audit" yaml:"audit" toml:"audit"`
	Logging  Logging  `koanf:"logging" yaml:"logging" toml:"logging"`
	QC       QC       `koanf:"qc" yaml:"qc" toml:"qc"`
}

// Renderer holds the status renderer defaults.
type Renderer struct {
	CounterWidth  int    `koanf:"counter_width" yaml:"counter_width" toml:"counter_width"`
	LeftOffset    int    `koanf:"left_offset" yaml:"left_offset" toml:"left_offset"`
	Bold          bool   `koanf:"bold" yaml:"bold" toml:"bold"`
	Color         string `koanf:"color" yaml:"color" toml:"color"`
	Separator     string `koanf:"separator" yaml:"separator" toml:"separator"`
	StartInline   bool   `koanf:"start_inline" yaml:"start_inline" toml:"start_inline"`
	PrecedingLine bool   `koanf:"preceding_line" yaml:"preceding_line" toml:"preceding_line"`
}

// Header holds banner defaults.
type Header struct {
	Fill  string `koanf:"fill" yaml:"fill" toml:"fill"`
	Width int    `koanf:"width" yaml:"width" toml:"width"`
}

// Audit configures the audit trail.
type Audit struct {
	Enabled bool   `koanf:"enabled" yaml:"enabled" toml:"enabled"`
	File    string `koanf:"file" yaml:"file" toml:"file"`
}

// Logging configures diagnostics.
type Logging struct {
	Verbosity int `koanf:"verbosity" yaml:"verbosity" toml:"verbosity"`
}

// QC configures frame comparisons.
type QC struct {
	Tolerance int `koanf:"tolerance" yaml:"tolerance" toml:"tolerance"`
	MaxRows   int `koanf:"max_rows" yaml:"max_rows" toml:"max_rows"`
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Renderer.CounterWidth < 1 {
		return errors.Newf(errors.ErrConfigValid, "renderer.counter_width must be at least 1, got %d", c.Renderer.CounterWidth)
	}
	if c.Renderer.LeftOffset < 0 {
		return errors.Newf(errors.ErrConfigValid, "renderer.left_offset must not be negative, got %d", c.Renderer.LeftOffset)
	}
	if _, ok := style.Lookup(c.Renderer.Color); !ok {
		return errors.Newf(errors.ErrConfigValid, "renderer.color: unknown color %q", c.Renderer.Color).
			WithDetail("color", c.Renderer.Color)
	}
	if c.Header.Width < 1 {
		return errors.Newf(errors.ErrConfigValid, "header.width must be at least 1, got %d", c.Header.Width)
	}
	if c.Header.Fill == "" {
		return errors.New(errors.ErrConfigValid, "header.fill must not be empty")
	}
	if c.QC.Tolerance < 0 {
		return errors.Newf(errors.ErrConfigValid, "qc.tolerance must not be negative, got %d", c.QC.Tolerance)
	}
	return nil
}

// StatusSettings maps the renderer section onto status.Settings.
func (c *Config) StatusSettings() status.Settings {
	color, _ := style.Lookup(c.Renderer.Color)
	return status.Settings{
		CounterWidth:  c.Renderer.CounterWidth,
		LeftOffset:    c.Renderer.LeftOffset,
		Bold:          c.Renderer.Bold,
		Color:         color,
		StartInline:   c.Renderer.StartInline,
		PrecedingLine: c.Renderer.PrecedingLine,
		Separator:     c.Renderer.Separator,
	}
}

// HeaderOptions returns the banner shape as status options.
func (c *Config) HeaderOptions() []status.Option {
	return []status.Option{status.WithFill(c.Header.Fill), status.WithWidth(c.Header.Width)}
}
