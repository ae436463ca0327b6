// Package logger holds the loggers shared by the style resolution
// packages. They default to a console logger and may be replaced
// with [Set], typically once at program start.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProgressLogger logs the main steps of the style resolution.
var ProgressLogger *zap.SugaredLogger

// WarningLogger emits a warning for each non fatal error, like unsupported CSS
// properties, invalid shorthands or values that can't be resolved.
var WarningLogger *zap.SugaredLogger

func init() {
	Set(NewConsole(zapcore.InfoLevel))
}

// NewConsole returns a development style logger writing to stderr,
// without caller and stack information.
func NewConsole(level zapcore.Level) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// Set replaces the package loggers, which become children of [base].
// A nil [base] disables logging.
func Set(base *zap.Logger) {
	if base == nil {
		base = zap.NewNop()
	}
	ProgressLogger = base.Named("webstyle.progress").Sugar()
	WarningLogger = base.Named("webstyle.warning").Sugar()
}
