// Package table prints small tabular frames under the status lines and
// compares frames for quality control between pipeline stages.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pipelog/pkg/errors"
	"github.com/pterm/pterm"
)

// Frame is a rectangular table of already formatted cells.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// Validate checks that every row has one cell per column.
func (f Frame) Validate() error {
	if len(f.Columns) == 0 {
		return errors.New(errors.ErrTableInvalid, "frame has no columns")
	}
	for i, row := range f.Rows {
		if len(row) != len(f.Columns) {
			return errors.Newf(errors.ErrTableInvalid, "row %d has %d cells, want %d", i, len(row), len(f.Columns)).
				WithDetail("row", i)
		}
	}
	return nil
}

// Options controls how a frame is rendered.
type Options struct {
	// MaxRows limits the rows shown; 0 shows all. Hidden rows are
	// summarised in a footer line.
	MaxRows int

	// LeftOffset indents every line, e.g. to sit under a numbered status line.
	LeftOffset int

	// Boxed draws a border around the table.
	Boxed bool
}

// Render returns the frame as text.
func Render(f Frame, opts Options) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	rows := f.Rows
	hidden := 0
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		hidden = len(rows) - opts.MaxRows
		rows = rows[:opts.MaxRows]
	}

	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, f.Columns)
	data = append(data, rows...)

	printer := pterm.DefaultTable.WithHasHeader().WithData(data).WithBoxed(opts.Boxed)
	out, err := printer.Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}

	out = strings.TrimRight(out, "\n")
	if hidden > 0 {
		out += fmt.Sprintf("\n... %d more rows", hidden)
	}
	return indent(out, opts.LeftOffset), nil
}

// Print renders f and writes it to w followed by a newline.
func Print(w io.Writer, f Frame, opts Options) error {
	out, err := Render(f, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
