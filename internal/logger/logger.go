// Package logger builds the zap loggers used by every command.
package logger

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log sinks. With neither Console nor File set the
// logger discards everything.
type Options struct {
	Debug bool

	// Console receives colored, human-readable lines.
	Console io.Writer

	// File receives JSON lines, rotated by size.
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New creates a logger writing to the sinks in opts.
func New(opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	var cores []zapcore.Core

	if opts.Console != nil {
		cores = append(cores, zapcore.NewCore(
			PrettyEncoder(),
			zapcore.Lock(zapcore.AddSync(opts.Console)),
			level,
		))
	}

	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
		}

		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(rotator),
			level,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop()
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Sync flushes l, ignoring the errors terminals return for fsync.
func Sync(l *zap.Logger) error {
	err := l.Sync()
	if err != nil && (strings.Contains(err.Error(), "invalid argument") ||
		strings.Contains(err.Error(), "inappropriate ioctl for device")) {
		return nil
	}
	return err
}
