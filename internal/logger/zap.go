package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger
}

// Unknown names log everything rather than nothing.
const fallbackLevel = zapcore.DebugLevel

func parseLevel(name string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(name))
	if err != nil || lvl > zapcore.ErrorLevel {
		return fallbackLevel
	}
	return lvl
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// New builds a logger writing console lines to w. Services use Get; New is for
// tests and tools that need their own sink.
func New(w io.Writer, level string) *Logger {
	core := zapcore.NewCore(consoleEncoder(), zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(parseLevel(level)))
	return &Logger{SugaredLogger: zap.New(core).Sugar().With("app", appName)}
}

func newStdoutLogger(level string) *Logger {
	return New(os.Stdout, level)
}
