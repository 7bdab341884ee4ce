package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error", ""} {
		l, err := NewZapLogger(lvl)
		if err != nil {
			t.Fatalf("NewZapLogger(%q) failed: %v", lvl, err)
		}
		// Must not panic with or without fields.
		l.Info("msg", String("k", "v"), Float64("f", 1.5))
		l.Warn("msg")
		l.Error("msg", Int("n", 3))
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"VERBOSE": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
