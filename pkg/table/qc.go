package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	passBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// QCResult compares the shape of a frame before and after a stage.
type QCResult struct {
	BeforeRows     int
	AfterRows      int
	BeforeColumns  int
	AfterColumns   int
	AddedColumns   []string
	RemovedColumns []string

	// Tolerance is the row count change still accepted as a pass.
	Tolerance int
}

// Delta is the change in row count.
func (q QCResult) Delta() int {
	return q.AfterRows - q.BeforeRows
}

// Passed reports whether the columns are unchanged and the row count
// moved by no more than Tolerance.
func (q QCResult) Passed() bool {
	d := q.Delta()
	if d < 0 {
		d = -d
	}
	return len(q.AddedColumns) == 0 && len(q.RemovedColumns) == 0 && d <= q.Tolerance
}

// Compare computes the QC result between two frames.
func Compare(before, after Frame, tolerance int) QCResult {
	return QCResult{
		BeforeRows:     len(before.Rows),
		AfterRows:      len(after.Rows),
		BeforeColumns:  len(before.Columns),
		AfterColumns:   len(after.Columns),
		AddedColumns:   missing(after.Columns, before.Columns),
		RemovedColumns: missing(before.Columns, after.Columns),
		Tolerance:      tolerance,
	}
}

// missing returns the names in a that are not in b, in a's order.
func missing(a, b []string) []string {
	seen := make(map[string]bool, len(b))
	for _, c := range b {
		seen[c] = true
	}
	var out []string
	for _, c := range a {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// RenderQC renders q as a small table followed by a PASS/FAIL line.
func RenderQC(label string, q QCResult, opts Options) (string, error) {
	changes := "-"
	var parts []string
	for _, c := range q.AddedColumns {
		parts = append(parts, "+"+c)
	}
	for _, c := range q.RemovedColumns {
		parts = append(parts, "-"+c)
	}
	if len(parts) > 0 {
		changes = strings.Join(parts, " ")
	}

	f := Frame{
		Columns: []string{"check", "before", "after", "change"},
		Rows: [][]string{
			{"rows", strconv.Itoa(q.BeforeRows), strconv.Itoa(q.AfterRows), signed(q.Delta())},
			{"columns", strconv.Itoa(q.BeforeColumns), strconv.Itoa(q.AfterColumns), changes},
		},
	}
	body, err := Render(f, opts)
	if err != nil {
		return "", err
	}

	badge := failBadge.Render("FAIL")
	if q.Passed() {
		badge = passBadge.Render("PASS")
	}
	return body + "\n" + indent(fmt.Sprintf("QC %s: %s", label, badge), opts.LeftOffset), nil
}

// PrintQC writes the QC rendering to w.
func PrintQC(w io.Writer, label string, q QCResult, opts Options) error {
	out, err := RenderQC(label, q, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
