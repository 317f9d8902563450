// Package logging builds the zap logger shared by all lyricount components.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a human readable logger which writes into w. Only messages with
// level INFO and above are written unless debug is true.
func New(debug bool, w zapcore.WriteSyncer) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(w), level)

	opts := []zap.Option{zap.ErrorOutput(w)}
	if debug {
		opts = append(opts, zap.AddCaller())
	}

	return zap.New(core, opts...)
}
