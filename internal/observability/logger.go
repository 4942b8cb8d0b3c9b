package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options держит настройки логгера отдельно от пакета config,
// чтобы логгер могли использовать пакеты ниже config
type Options struct {
	LogPath    string
	LogLevel   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logger пишет одновременно в stdout и в ротируемый файл
type Logger struct {
	slog    *slog.Logger
	rotator *lumberjack.Logger
}

func NewLogger(opts Options) *Logger {
	rotator := &lumberjack.Logger{
		Filename:   opts.LogPath,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   false,
	}

	handler := slog.NewTextHandler(
		io.MultiWriter(os.Stdout, rotator),
		&slog.HandlerOptions{Level: parseLevel(opts.LogLevel)},
	)

	return &Logger{
		slog:    slog.New(handler),
		rotator: rotator,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.slog.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	l.slog.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.slog.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...interface{}) {
	l.slog.Error(msg, fields...)
}

// Close закрывает файл ротации
func (l *Logger) Close() error {
	if l.rotator != nil {
		return l.rotator.Close()
	}
	return nil
}
