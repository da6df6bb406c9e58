package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/ricer/pkg/errors"
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
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "unit not found",
			wantStr: "[NOT_FOUND] unit not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "empty command",
			wantStr: "[INVALID_INPUT] empty command",
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
	err := errors.Newf(errors.ErrSymlinkCreate, "cannot link %s with mode %o", "sway", 0755)
	assert.Equal(t, "cannot link sway with mode 755", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileRemove, "failed to remove directory")
		require.Error(t, err)

		assert.Equal(t, "[FILE_REMOVE] failed to remove directory: permission denied", err.Error())
		assert.ErrorIs(t, err, baseErr)
		assert.Equal(t, errors.ErrFileRemove, errors.GetErrorCode(err))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.NoError(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.NoError(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrTempDir, "failed to create temp dir for %s", "foo")
		assert.Equal(t, "[TEMP_DIR] failed to create temp dir for foo: permission denied", err.Error())
	})
}

func TestIsErrorCode(t *testing.T) {
	inner := errors.New(errors.ErrCommandExit, "exit status 1")
	outer := fmt.Errorf("package foo: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrCommandExit))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrCommandExecute))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrCommandExit))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrConfigValid, "bad unit")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrConfigValid, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrConfigLoad, "bad unit")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileAccess, "cannot inspect").
		WithDetail("path", "/home/user/.config/sway")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/home/user/.config/sway", details["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
