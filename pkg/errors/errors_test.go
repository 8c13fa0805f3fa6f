// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/pipelog/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_invalid",
			code:    errors.ErrConfigValid,
			message: "counter width must be positive",
			wantStr: "[CONFIG_INVALID] counter width must be positive",
		},
		{
			name:    "audit_open",
			code:    errors.ErrAuditOpen,
			message: "cannot open audit file",
			wantStr: "[AUDIT_OPEN] cannot open audit file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrTableInvalid, "row %d has %d cells, want %d", 3, 2, 4)
	assert.Equal(t, "row 3 has 2 cells, want 4", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "failed to load config")

		assert.Equal(t, errors.ErrConfigLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CONFIG_LOAD] failed to load config: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrAuditWrite, "writing %s", "trail.log")
		assert.Equal(t, "writing trail.log", err.Message)
	})
}

func TestIsAndCodes(t *testing.T) {
	err := fmt.Errorf("outer: %w",
		errors.New(errors.ErrConfigParse, "bad yaml").WithDetail("path", "config.yaml"))

	require.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.False(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
	assert.Equal(t, "config.yaml", errors.GetErrorDetails(err)["path"])
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrConfigParse, "any message")))

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}
