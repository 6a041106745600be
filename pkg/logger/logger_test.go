package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_OnlyFirstCallConfigures(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	first := Init(Options{Level: "debug", Output: &buf})
	second := Init(Options{Level: "error", Output: &bytes.Buffer{}})

	if first.GetLevel() != second.GetLevel() {
		t.Fatalf("second Init must not reconfigure: %v vs %v", first.GetLevel(), second.GetLevel())
	}

	first.Debug().Msg("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected log output, got %q", buf.String())
	}
}

func TestGet_BeforeInitUsesDefaults(t *testing.T) {
	Reset()
	defer Reset()

	log := Get()
	if log.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected default info level, got %v", log.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
