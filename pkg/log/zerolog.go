package log

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of zerolog.
// Loggers derived through With share the minimum level of their parent, so
// SetLevel on the provider applies to loggers handed out earlier.
type ZerologLogger struct {
	zl    zerolog.Logger
	level *atomic.Int32
}

// NewZerologLogger wraps an existing zerolog.Logger. Records below level are dropped.
func NewZerologLogger(zl zerolog.Logger, level Level) *ZerologLogger {
	lv := &atomic.Int32{}
	lv.Store(int32(level))
	return &ZerologLogger{zl: zl, level: lv}
}

// Debug implements Logger.Debug.
func (z *ZerologLogger) Debug(msg string, fields ...any) {
	if z.enabled(LevelDebug) {
		z.zl.Debug().Fields(fields).Msg(msg)
	}
}

// Info implements Logger.Info.
func (z *ZerologLogger) Info(msg string, fields ...any) {
	if z.enabled(LevelInfo) {
		z.zl.Info().Fields(fields).Msg(msg)
	}
}

// Warn implements Logger.Warn.
func (z *ZerologLogger) Warn(msg string, fields ...any) {
	if z.enabled(LevelWarn) {
		z.zl.Warn().Fields(fields).Msg(msg)
	}
}

// Error implements Logger.Error. A leading error field is attached with Err
// together with the stack trace recorded by cockroachdb/errors.
func (z *ZerologLogger) Error(msg string, fields ...any) {
	if !z.enabled(LevelError) {
		return
	}
	event := z.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			event = event.Err(err)
			if st := extractStacktrace(err); st != "" {
				event = event.Str(StacktraceKey, st)
			}
			fields = fields[1:]
		}
	}
	event.Fields(fields).Msg(msg)
}

// With implements Logger.With.
func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{
		zl:    z.zl.With().Fields(fields).Logger(),
		level: z.level,
	}
}

// Enabled implements Logger.Enabled.
func (z *ZerologLogger) Enabled(ctx context.Context, level Level) bool {
	return z.enabled(level)
}

func (z *ZerologLogger) enabled(level Level) bool {
	return Level(z.level.Load()) <= level
}

// ZerologProvider implements LoggerProvider with a shared zerolog root logger.
type ZerologProvider struct {
	root *ZerologLogger
}

// NewZerologProvider creates a provider that writes JSON records to w.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	zl := zerolog.New(w).With().Timestamp().Logger()
	return &ZerologProvider{root: NewZerologLogger(zl, level)}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	return p.root
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.root.With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.root.level.Store(int32(level))
}
