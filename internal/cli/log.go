package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the command logger. Timestamps are only reported at
// debug level, where per-format export timings are interleaved.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: level <= log.DebugLevel,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// step times one unit of CLI work, such as loading a structure or writing
// one export format, and logs it with its fields once finished.
type step struct {
	logger *log.Logger
	msg    string
	fields []any
	start  time.Time
}

func startStep(l *log.Logger, msg string, fields ...any) *step {
	return &step{logger: l, msg: msg, fields: fields, start: time.Now()}
}

// done logs the step at info level with its elapsed time, or at error
// level when err is set.
func (s *step) done(err error, fields ...any) {
	kv := append(append([]any{}, s.fields...), fields...)
	kv = append(kv, "took", time.Since(s.start).Round(time.Millisecond))
	if err != nil {
		s.logger.Error(s.msg+" failed", append(kv, "err", err)...)
		return
	}
	s.logger.Info(s.msg, kv...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default() outside a command run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
