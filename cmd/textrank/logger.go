package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/az-ai-labs/textrank/internal/config"
)

// newLogger builds a zap logger from cfg. Records go to a rotated file when
// cfg.File is set, otherwise to stderr. Development mode switches to the
// console encoder.
func newLogger(cfg config.Log, stderr io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var enc zapcore.Encoder
	if cfg.Development {
		ec := zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(ec)
	} else {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	}

	var sink zapcore.WriteSyncer
	if cfg.File != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
		})
	} else {
		sink = zapcore.Lock(zapcore.AddSync(stderr))
	}

	opts := []zap.Option{zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(stderr)))}
	if cfg.Development {
		opts = append(opts, zap.AddCaller(), zap.Development())
	}
	return zap.New(zapcore.NewCore(enc, sink, level), opts...), nil
}
