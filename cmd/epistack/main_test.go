package main

import (
	"fmt"
	"testing"

	epierrors "github.com/matzehuels/epistack/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", epierrors.New(epierrors.ErrCodeInvalidInput, "unknown format %q", "svg"), 2},
		{"invalid config", epierrors.New(epierrors.ErrCodeInvalidConfig, "bad substrate"), 2},
		{"invalid format", epierrors.New(epierrors.ErrCodeInvalidFormat, "malformed JSON"), 2},
		{"validation", fmt.Errorf("building: %w", epierrors.New(epierrors.ErrCodeValidation, "zero thickness")), 2},
		{"io", epierrors.New(epierrors.ErrCodeIO, "disk full"), 1},
		{"lookup", epierrors.New(epierrors.ErrCodeLookup, "no channel"), 1},
		{"plain", fmt.Errorf("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
