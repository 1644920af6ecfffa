package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_VerboseLogsDebug(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Verbose: true, Output: &buf})

	Debug("debug line", "key", "value")
	if !strings.Contains(buf.String(), "debug line") {
		t.Error("expected debug output in verbose mode")
	}
}

func TestInit_DefaultSuppressesDebug(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Output: &buf})

	Debug("hidden")
	Info("also hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug/info output should be suppressed by default")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn output should appear by default")
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Verbose: true, Output: &first})
	Init(Options{Verbose: true, Output: &second})

	Error("boom")
	if !strings.Contains(first.String(), "boom") {
		t.Error("expected output on first writer")
	}
	if second.Len() != 0 {
		t.Error("second Init should have been a no-op")
	}
}

func TestLog_NilSafeBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	// Must not panic.
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}
