package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // Package-level logger state is shared intentionally across the module.
var (
	// defaultLevel is the mutable level gate of the package-level logger.
	defaultLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	// globalLogger is the package-level logger used when the context does
	// not carry one.
	globalLogger = New(defaultLevel)
)

// loggerContextKey is the context key under which a logger travels.
type loggerContextKey struct{}

// New creates a new zap logger writing to stdout at the given level.
// A nil level falls back to the package default level.
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.Logger {
	if level == nil {
		level = defaultLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)

	return zap.New(core, options...)
}

// Logger returns the package-level logger.
func Logger() *zap.Logger {
	return globalLogger
}

// SetLogger replaces the package-level logger.
func SetLogger(l *zap.Logger) {
	globalLogger = l
}

// Level returns the current level of the package-level logger.
func Level() zapcore.Level {
	return defaultLevel.Level()
}

// SetLevel changes the level of the package-level logger.
func SetLevel(level zapcore.Level) {
	defaultLevel.SetLevel(level)
}

// IsDebugLevel reports whether the package-level logger emits debug
// messages.
func IsDebugLevel() bool {
	return defaultLevel.Enabled(zapcore.DebugLevel)
}

// ParseLogLevel parses a textual log level ("debug", "info", ...) into a
// zapcore.Level. It is case-insensitive and tolerates surrounding
// whitespace. The second return value reports whether the input was a
// recognized level; on failure the info level is returned.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(level))
	if trimmed == "" {
		return zapcore.InfoLevel, false
	}

	parsed, err := zapcore.ParseLevel(trimmed)
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// ToContext returns a context carrying the given logger.
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// FromContext returns the logger carried by the context, or the
// package-level logger when the context carries none.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerContextKey{}).(*zap.Logger); ok {
		return l
	}

	return globalLogger
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Debugf(format, args...)
}

// DebugKV logs a message with key-value pairs at debug level.
func DebugKV(ctx context.Context, msg string, kvs ...any) {
	FromContext(ctx).Sugar().Debugw(msg, kvs...)
}

// Info logs a message at info level.
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Infof(format, args...)
}

// InfoKV logs a message with key-value pairs at info level.
func InfoKV(ctx context.Context, msg string, kvs ...any) {
	FromContext(ctx).Sugar().Infow(msg, kvs...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Warnf(format, args...)
}

// WarnKV logs a message with key-value pairs at warn level.
func WarnKV(ctx context.Context, msg string, kvs ...any) {
	FromContext(ctx).Sugar().Warnw(msg, kvs...)
}

// Error logs a message at error level.
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Error(msg, fields...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Errorf(format, args...)
}

// ErrorKV logs a message with key-value pairs at error level.
func ErrorKV(ctx context.Context, msg string, kvs ...any) {
	FromContext(ctx).Sugar().Errorw(msg, kvs...)
}

// Fatal logs a message at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}

// Fatalf logs a formatted message at fatal level and exits the process.
func Fatalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Fatalf(format, args...)
}
