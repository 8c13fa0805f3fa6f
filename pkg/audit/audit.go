// Package audit writes a plain-text audit trail of pipeline steps to a file.
//
// Every line carries a timestamp and the name of the step, which callers
// pass explicitly:
//
//	2024-05-01 10:12:03 | EXEC: load_table | PARAMS: args=[orders 2024]
//	2024-05-01 10:12:04 | merge done | CONTEXT: rows=120, table=orders
package audit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/pipelog/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultFile is used when no path is configured.
const DefaultFile = "audit_trail.txt"

// TimeFormat is the timestamp layout of every audit line.
const TimeFormat = "2006-01-02 15:04:05"

// Auditor appends audit lines to a writer. A nil *Auditor discards
// everything, so optional auditing needs no guards at call sites.
type Auditor struct {
	closer io.Closer
	log    zerolog.Logger
}

// New opens path for appending, creating parent directories as needed.
func New(path string) (*Auditor, error) {
	if path == "" {
		path = DefaultFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrAuditOpen, "failed to create audit directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrAuditOpen, "failed to open audit file %s", path).
			WithDetail("path", path)
	}
	a := NewWriter(f)
	a.closer = f
	return a, nil
}

// NewWriter builds an Auditor on top of w. The caller keeps ownership of w.
func NewWriter(w io.Writer) *Auditor {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: TimeFormat,
		PartsOrder: []string{zerolog.TimestampFieldName, zerolog.MessageFieldName},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("| %v", i)
		},
	}
	return &Auditor{log: zerolog.New(out).With().Timestamp().Logger()}
}

// Trace records that the step name ran with args.
func (a *Auditor) Trace(name string, args ...any) {
	if a == nil {
		return
	}
	a.log.Log().Msgf("EXEC: %s | PARAMS: args=%v", name, args)
}

// Run records name, then runs fn. A failure of fn is recorded as well and
// returned unchanged.
func (a *Auditor) Run(name string, fn func() error, args ...any) error {
	a.Trace(name, args...)
	if err := fn(); err != nil {
		a.fail(name, err)
		return err
	}
	return nil
}

// Call is Run for steps that produce a value.
func Call[T any](a *Auditor, name string, fn func() (T, error), args ...any) (T, error) {
	a.Trace(name, args...)
	v, err := fn()
	if err != nil {
		a.fail(name, err)
	}
	return v, err
}

func (a *Auditor) fail(name string, err error) {
	if a == nil {
		return
	}
	a.log.Log().Msgf("FAIL: %s | ERROR: %v", name, err)
}

// WithContext returns an Adapter that tags every message with fields.
func (a *Auditor) WithContext(fields map[string]any) *Adapter {
	ad := &Adapter{context: formatContext(fields)}
	if a == nil {
		ad.log = zerolog.Nop()
	} else {
		ad.log = a.log
	}
	return ad
}

// Close closes the file opened by New. Auditors built with NewWriter have
// nothing to close.
func (a *Auditor) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	if err := a.closer.Close(); err != nil {
		return errors.Wrap(err, errors.ErrAuditWrite, "failed to close audit file")
	}
	return nil
}

// Adapter logs messages carrying a fixed context suffix.
type Adapter struct {
	log     zerolog.Logger
	context string
}

// Info records msg with the adapter's context.
func (ad *Adapter) Info(msg string) {
	ad.log.Log().Msg(msg + ad.context)
}

// Infof records a formatted message with the adapter's context.
func (ad *Adapter) Infof(format string, args ...any) {
	ad.Info(fmt.Sprintf(format, args...))
}

func formatContext(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return " | CONTEXT: " + strings.Join(pairs, ", ")
}
