package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout collects everything fn prints to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(out)
}

func TestPrintError(t *testing.T) {
	out := captureStdout(t, func() { printError("render failed: %s", "boom") })
	if !strings.Contains(out, "render failed: boom") {
		t.Errorf("printError output = %q", out)
	}
}

func TestPrintStats(t *testing.T) {
	out := captureStdout(t, func() { printStats(7, 2, true) })
	for _, want := range []string{"7 nodes", "depth 2", "cached"} {
		if !strings.Contains(out, want) {
			t.Errorf("printStats output %q missing %q", out, want)
		}
	}
}
