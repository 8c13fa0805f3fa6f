// Package pipeline is a small staged job that exercises every kind of
// status line: banners, numbered steps, nested lines, accumulating inline
// animations, an in-place ETA and a QC table. It backs `pipelog demo`.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/arthur-debert/pipelog/pkg/audit"
	"github.com/arthur-debert/pipelog/pkg/logging"
	"github.com/arthur-debert/pipelog/pkg/status"
	"github.com/arthur-debert/pipelog/pkg/style"
	"github.com/arthur-debert/pipelog/pkg/table"
	"github.com/arthur-debert/pipelog/pkg/timer"
	"github.com/rs/zerolog"
)

// etaColumn is where the in-place ETA is drawn on the load line.
const etaColumn = 48

// Pipeline runs the demo stages against a Renderer.
type Pipeline struct {
	Out      io.Writer
	Renderer *status.Renderer
	Auditor  *audit.Auditor

	// Pause is slept before every step so the animation is visible.
	Pause time.Duration

	// Batches is the number of inline steps per animated stage.
	Batches int

	// HeaderOptions shape the START/END banners.
	HeaderOptions []status.Option

	// QC configures the closing table comparison.
	QCTolerance int
	QCMaxRows   int

	log zerolog.Logger
}

// Run executes all stages in order. It stops early when ctx is done.
func (p *Pipeline) Run(ctx context.Context) error {
	p.log = logging.GetLogger("pipeline")
	done := logging.LogOperationStart(p.log, "demo")
	defer done()

	if p.Batches <= 0 {
		p.Batches = 4
	}

	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"extract", p.extract},
		{"transform", p.transform},
		{"reload", p.reload},
		{"load", p.load},
		{"qc", p.qc},
	}

	banner := append(append([]status.Option{}, p.HeaderOptions...), status.WithFill("#"), status.WithColor(style.Purple))
	if err := p.Renderer.Header("START PROCESS", banner...); err != nil {
		return err
	}

	for _, s := range stages {
		fn := s.fn
		start := time.Now()
		err := p.Auditor.Run(s.name, func() error { return fn(ctx) }, p.Batches)
		logging.LogDuration(start, "stage "+s.name)
		if err != nil {
			p.log.Error().Err(err).Str("stage", s.name).Msg("Stage failed")
			return fmt.Errorf("stage %s: %w", s.name, err)
		}
	}

	return p.Renderer.Header("END PROCESS", banner...)
}

func (p *Pipeline) extract(ctx context.Context) error {
	if err := p.wait(ctx); err != nil {
		return err
	}
	if err := p.Renderer.Numbered("extracting sources", status.WithColor(style.Blue)); err != nil {
		return err
	}

	if err := p.wait(ctx); err != nil {
		return err
	}
	return p.Renderer.Offset("schema validated", status.WithColor(style.Green))
}

// transform animates an accumulating line: every batch stays visible.
func (p *Pipeline) transform(ctx context.Context) error {
	if err := p.wait(ctx); err != nil {
		return err
	}
	if err := p.Renderer.Numbered("transforming", status.WithColor(style.Red), status.Inline()); err != nil {
		return err
	}

	for i := 1; i <= p.Batches; i++ {
		if err := p.wait(ctx); err != nil {
			return err
		}
		if err := p.Renderer.Append("batch "+strconv.Itoa(i), status.WithColor(style.Red)); err != nil {
			return err
		}
	}
	return p.Renderer.InlineEnd()
}

func (p *Pipeline) reload(ctx context.Context) error {
	if err := p.wait(ctx); err != nil {
		return err
	}
	return p.Renderer.Numbered("restarting count for the load stage",
		status.WithColor(style.Yellow),
		status.WithCounterReset(),
		status.WithPrecedingLine(true),
	)
}

// load grows the line per batch and keeps a transient ETA aligned at a
// fixed column to the right of it.
func (p *Pipeline) load(ctx context.Context) error {
	tm := timer.New(p.Batches)

	if err := p.wait(ctx); err != nil {
		return err
	}
	if err := p.Renderer.Numbered("loading", status.WithColor(style.Blue), status.Inline()); err != nil {
		return err
	}

	for i := 1; i <= p.Batches; i++ {
		if err := p.wait(ctx); err != nil {
			return err
		}
		if err := p.Renderer.Append(strconv.Itoa(i), status.WithColor(style.Blue)); err != nil {
			return err
		}
		// The ETA is redrawn right after every batch. The shorter batch
		// frame does not clear it, and this redraw covers the stale one.
		eta := fmt.Sprintf("ETA %s", tm.Remaining(i))
		if err := p.Renderer.Append(eta, status.AtColumn(etaColumn), status.InPlace(), status.WithSeparator(" "), status.WithColor(style.DarkGray)); err != nil {
			return err
		}
	}
	if err := p.Renderer.InlineEnd(); err != nil {
		return err
	}
	return p.Renderer.Offset("elapsed "+tm.Elapsed(), status.WithColor(style.DarkGray))
}

func (p *Pipeline) qc(ctx context.Context) error {
	if err := p.wait(ctx); err != nil {
		return err
	}

	before := sampleFrame(p.Batches)
	after := loadedFrame(before)
	result := table.Compare(before, after, p.QCTolerance)

	indent := p.Renderer.Settings().CounterWidth + 2
	if err := p.Renderer.Numbered("quality control", status.WithBold(true)); err != nil {
		return err
	}
	opts := table.Options{LeftOffset: indent, MaxRows: p.QCMaxRows}
	if err := table.Print(p.Out, after, opts); err != nil {
		return err
	}
	return table.PrintQC(p.Out, "load", result, opts)
}

func sampleFrame(batches int) table.Frame {
	f := table.Frame{Columns: []string{"batch", "rows", "status"}}
	for i := 1; i <= batches; i++ {
		f.Rows = append(f.Rows, []string{strconv.Itoa(i), strconv.Itoa(i * 100), "loaded"})
	}
	return f
}

// loadedFrame is what the load stage kept: the last batch is rejected,
// so QC sees one row less than was extracted.
func loadedFrame(before table.Frame) table.Frame {
	after := table.Frame{Columns: before.Columns}
	if len(before.Rows) > 0 {
		after.Rows = append(after.Rows, before.Rows[:len(before.Rows)-1]...)
	}
	return after
}

func (p *Pipeline) wait(ctx context.Context) error {
	if p.Pause <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.Pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
