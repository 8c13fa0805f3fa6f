package audit

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/pipelog/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stamp = `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \| `

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	a := NewWriter(&buf)

	a.Trace("load_table", "orders", 2024)
	a.Trace("no_args")

	got := lines(&buf)
	require.Len(t, got, 2)
	assert.Regexp(t, stamp+`EXEC: load_table \| PARAMS: args=\[orders 2024\]$`, got[0])
	assert.Regexp(t, stamp+`EXEC: no_args \| PARAMS: args=\[\]$`, got[1])
}

func TestRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		a := NewWriter(&buf)
		ran := false

		err := a.Run("step", func() error { ran = true; return nil }, "x")

		require.NoError(t, err)
		assert.True(t, ran)
		assert.Len(t, lines(&buf), 1)
	})

	t.Run("failure is recorded and returned", func(t *testing.T) {
		var buf bytes.Buffer
		a := NewWriter(&buf)
		boom := stderrors.New("boom")

		err := a.Run("step", func() error { return boom })

		assert.Same(t, boom, err)
		got := lines(&buf)
		require.Len(t, got, 2)
		assert.Regexp(t, stamp+`FAIL: step \| ERROR: boom$`, got[1])
	})
}

func TestCall(t *testing.T) {
	var buf bytes.Buffer
	a := NewWriter(&buf)

	n, err := Call(a, "count_rows", func() (int, error) { return 42, nil }, "orders")

	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Contains(t, buf.String(), "EXEC: count_rows | PARAMS: args=[orders]")
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	a := NewWriter(&buf)

	ad := a.WithContext(map[string]any{"table": "orders", "rows": 120})
	ad.Info("merge done")
	ad.Infof("wrote %d files", 3)
	a.WithContext(nil).Info("bare")

	got := lines(&buf)
	require.Len(t, got, 3)
	assert.Regexp(t, stamp+`merge done \| CONTEXT: rows=120, table=orders$`, got[0])
	assert.Regexp(t, stamp+`wrote 3 files \| CONTEXT: rows=120, table=orders$`, got[1])
	assert.Regexp(t, stamp+`bare$`, got[2])
}

func TestNilAuditor(t *testing.T) {
	var a *Auditor

	assert.NotPanics(t, func() {
		a.Trace("x")
		a.WithContext(map[string]any{"k": 1}).Info("y")
	})
	assert.NoError(t, a.Run("x", func() error { return nil }))
	assert.NoError(t, a.Close())

	v, err := Call(a, "x", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trail.txt")

	a, err := New(path)
	require.NoError(t, err)
	a.Trace("first")
	require.NoError(t, a.Close())

	a, err = New(path)
	require.NoError(t, err)
	a.Trace("second")
	require.NoError(t, a.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "EXEC: first")
	assert.Contains(t, string(data), "EXEC: second")
}

func TestNewFileError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := New(filepath.Join(blocker, "trail.txt"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAuditOpen))
}
