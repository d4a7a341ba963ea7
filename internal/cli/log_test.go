package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/epistack/pkg/device"
)

var timestampRE = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{2}`)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     log.Level
		debugSeen bool
		timestamp bool
	}{
		{"info", LogInfo, false, false},
		{"debug", LogDebug, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			logger.Debug("importing structure", "path", "hemt.json")
			logger.Info("built structure")

			out := buf.String()
			if !strings.Contains(out, appName) {
				t.Errorf("output missing %q prefix:\n%s", appName, out)
			}
			if got := strings.Contains(out, "importing structure"); got != tt.debugSeen {
				t.Errorf("debug line logged = %v, want %v", got, tt.debugSeen)
			}
			if got := timestampRE.MatchString(out); got != tt.timestamp {
				t.Errorf("timestamps = %v, want %v", got, tt.timestamp)
			}
		})
	}
}

func TestStepDone(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)

	startStep(logger, "export", "substrate", "SiC").done(nil, "files", 2)

	out := buf.String()
	for _, want := range []string{"export", "substrate=SiC", "files=2", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStepDoneError(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)

	startStep(logger, "wrote tcad", "path", "hemt.cmd").done(errors.New("disk full"))

	out := buf.String()
	for _, want := range []string{"wrote tcad failed", "path=hemt.cmd", "disk full", "ERRO"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportAllLogsEachFormat(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, LogInfo))

	s, err := device.NewDefault(device.SubstrateSiC, device.DefaultDimensions())
	if err != nil {
		t.Fatal(err)
	}
	base := filepath.Join(t.TempDir(), "hemt")
	if _, err := exportAll(ctx, s, []string{"tcad", "json"}, base); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"wrote tcad", "wrote json", "hemt.cmd", "hemt.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("expected log.Default() without an attached logger")
	}

	custom := newLogger(&bytes.Buffer{}, LogInfo)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("expected the attached logger")
	}
}
