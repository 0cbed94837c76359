package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		" WARN ":   zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"fatal":    fallbackLevel,
		"verbose":  fallbackLevel,
		"":         zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestNew_FiltersByLevelAndWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WarnLevel)

	log.Infow("scale_request", "scale", "HO")
	log.Warnw("conversion_record_failed", "scale", "N")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "scale_request") {
		t.Fatalf("info entry should be filtered at warn level: %s", out)
	}
	for _, want := range []string{"WARN", "conversion_record_failed", `"scale": "N"`, `"app": "scaler"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestGet_IsSingleton(t *testing.T) {
	if Get(ErrorLevel) != Get(DebugLevel) {
		t.Fatalf("Get must return the same instance")
	}
}
