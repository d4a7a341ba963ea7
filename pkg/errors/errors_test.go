package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeValidation, "layer %s: thickness must be positive", "Cap")

	assert.Equal(t, ErrCodeValidation, err.Code)
	assert.Equal(t, "layer Cap: thickness must be positive", err.Message)
	assert.EqualError(t, err, "VALIDATION: layer Cap: thickness must be positive")
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "create out.cmd")

	assert.Equal(t, ErrCodeIO, err.Code)
	assert.Same(t, cause, err.Cause)
	assert.Same(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "IO: create out.cmd: disk full")
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeLookup, "no channel"), ErrCodeLookup, true},
		{"non-matching code", New(ErrCodeLookup, "no channel"), ErrCodeValidation, false},
		{"outer code wins", Wrap(ErrCodeInvalidConfig, New(ErrCodeValidation, "inner"), "outer"), ErrCodeInvalidConfig, true},
		{"plain error", errors.New("plain error"), ErrCodeValidation, false},
		{"nil", nil, ErrCodeValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Is(tt.err, tt.code))
		})
	}
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidFormat, GetCode(New(ErrCodeInvalidFormat, "bad layer")))
	assert.Equal(t, ErrCodeIO, GetCode(fmt.Errorf("loading: %w", New(ErrCodeIO, "open"))))
	assert.Empty(t, GetCode(errors.New("plain")))
	assert.Empty(t, GetCode(nil))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeValidation, "friendly message"), "friendly message"},
		{"plain", errors.New("plain error"), "plain error"},
		{"wrapped plain cause", Wrap(ErrCodeIO, errors.New("disk full"), "writing hemt.cmd"), "writing hemt.cmd: disk full"},
		{"nested codes", Wrap(ErrCodeInvalidConfig, New(ErrCodeValidation, "thickness must be positive"), "layer Cap"), "layer Cap: thickness must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeValidation,
		ErrCodeLookup,
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidConfig,
		ErrCodeIO,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "duplicate error code %s", code)
		seen[code] = true
	}
}
