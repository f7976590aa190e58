package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{FATAL, "FATAL"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "test"})

	log.Info("simulation complete", map[string]interface{}{"energy_joules": 3.927e16})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("level = %q, expected INFO", entry.Level)
	}
	if entry.Message != "simulation complete" {
		t.Errorf("message = %q", entry.Message)
	}
	if entry.Component != "test" {
		t.Errorf("component = %q, expected test", entry.Component)
	}
	if _, ok := entry.Fields["energy_joules"]; !ok {
		t.Error("expected energy_joules field in entry")
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf, Component: "server"})

	log.Warn("catalog lookup slow")

	out := buf.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "[server]") || !strings.Contains(out, "catalog lookup slow") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: TextFormat, Output: &buf})

	log.Debug("hidden")
	log.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below WARN, got %q", buf.String())
	}

	log.Warn("visible")
	if buf.Len() == 0 {
		t.Error("expected WARN output")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: INFO, Format: TextFormat, Output: &buf})
	child := base.WithComponent("pipeline")

	child.Info("started")
	if !strings.Contains(buf.String(), "[pipeline]") {
		t.Errorf("child logger missing component: %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warning", WARN},
		{"Error", ERROR},
		{"fatal", FATAL},
		{"bogus", -1},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	if got := ParseLogFormat("json"); got != JSONFormat {
		t.Errorf("ParseLogFormat(json) = %d", got)
	}
	if got := ParseLogFormat("TEXT"); got != TextFormat {
		t.Errorf("ParseLogFormat(TEXT) = %d", got)
	}
	if got := ParseLogFormat("yaml"); got != -1 {
		t.Errorf("ParseLogFormat(yaml) = %d, expected -1", got)
	}
}
