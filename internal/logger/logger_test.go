package logger

import (
	"bytes"
	"os"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Cleanup(reset)
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	return &buf
}

func TestDebugWhenVerbose(t *testing.T) {
	buf := capture(t)

	Debug("lookup %s", "drill")

	if got := buf.String(); got != "[DEBUG] lookup drill\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestSilentWhenNotVerbose(t *testing.T) {
	t.Cleanup(reset)
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Row("42", "hidden")
	Section("hidden")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestRowPrefixesCatid(t *testing.T) {
	buf := capture(t)

	Row("1001", "hash held by %s", "7777")

	if got := buf.String(); got != "[DEBUG] row 1001: hash held by 7777\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestSection(t *testing.T) {
	buf := capture(t)

	Section("batch abc: 3 rows")

	if got := buf.String(); got != "\n=== batch abc: 3 rows ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestInfoAndWarnLevels(t *testing.T) {
	buf := capture(t)

	Info("row %d done", 1)
	Warn("history store unavailable")

	want := "[INFO] row 1 done\n[WARN] history store unavailable\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Cleanup(reset)
	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			SetVerbose(true)
			Debug("concurrent %d", n)
			SetVerbose(false)
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
