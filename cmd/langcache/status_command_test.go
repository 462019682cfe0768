package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestStatusReportsChecks(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	requireContains(t, out, "== Checks ==")
	requireContains(t, out, "Language API:")
	requireContains(t, out, "[OK] Reachable")
	requireContains(t, out, "none recorded")
	if strings.Contains(out, "\x1b[") {
		t.Fatal("expected no ansi colors for non-tty output")
	}
}

func TestStatusPrinterColorsOnlyTerminals(t *testing.T) {
	var buf bytes.Buffer
	p := newStatusPrinter(&buf)
	p.line("Cache directory", statusOK, "ok")
	if got := buf.String(); got != "  Cache directory:     [OK] ok\n" {
		t.Fatalf("unexpected line %q", got)
	}

	buf.Reset()
	p.color = true
	p.line("API", statusError, "")
	got := strings.TrimSuffix(buf.String(), "\n")
	if !strings.HasPrefix(got, statusStyles[statusError].color) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected red line, got %q", got)
	}
}
