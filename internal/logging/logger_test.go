// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || cfg.Caller || !cfg.Timestamp || cfg.Output == nil {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

// Tests below reconfigure the global logger and must not run in parallel.

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Timestamp: true, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Str("stop", "Memphis, TN").Msg("weather fetched")
	Debug().Msg("debug line")
	Err(errors.New("boom")).Msg("failed")

	out := buf.String()
	for _, want := range []string{
		`"service":"roadtrip"`,
		`"stop":"Memphis, TN"`,
		`"message":"weather fetched"`,
		`"level":"debug"`,
		`"error":"boom"`,
		`"time":`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestInitLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Msg("hidden")
	Warn().Msg("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %s", buf.String())
	}
	if GetLevel() != zerolog.WarnLevel {
		t.Errorf("GetLevel() = %v", GetLevel())
	}
}

func TestInitConsole(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Msg("console line")
	out := buf.String()
	if !strings.Contains(out, "console line") || strings.HasPrefix(out, "{") {
		t.Errorf("console output = %q", out)
	}
}

func TestWithComponentFromGlobal(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { Init(DefaultConfig()) })

	l := WithComponent("ranker")
	l.Info().Msg("ranked")
	if !strings.Contains(buf.String(), `"component":"ranker"`) {
		t.Errorf("output = %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if !ValidLevel("Warn") || ValidLevel("verbose") {
		t.Error("ValidLevel mismatch")
	}
}
