package diag

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var n, p bytes.Buffer
	SetOutput(&n, &p)
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr) })
	return &n, &p
}

func TestLevelsRouteToSinks(t *testing.T) {
	n, p := capture(t)

	Logf(Note, "hello %d", 1)
	Logf(Warning, "careful")
	Logf(Error, "broken")

	if !strings.Contains(n.String(), "NOTE") || !strings.Contains(n.String(), "hello 1") {
		t.Errorf("note sink missing note: %q", n.String())
	}
	if strings.Contains(n.String(), "WARNING") || strings.Contains(n.String(), "ERROR") {
		t.Errorf("note sink got a problem: %q", n.String())
	}
	if !strings.Contains(p.String(), "WARNING") || !strings.Contains(p.String(), "careful") {
		t.Errorf("problem sink missing warning: %q", p.String())
	}
	if !strings.Contains(p.String(), "ERROR") || !strings.Contains(p.String(), "broken") {
		t.Errorf("problem sink missing error: %q", p.String())
	}
}

func TestCallerLocation(t *testing.T) {
	_, p := capture(t)

	Warnf("attempted divide by %d", 0)

	out := p.String()
	if !strings.Contains(out, "diag_test.go:") {
		t.Errorf("expected caller file in %q", out)
	}
	if !strings.Contains(out, "diag.TestCallerLocation") {
		t.Errorf("expected caller function in %q", out)
	}
}

func TestLevelString(t *testing.T) {
	if Level(7).String() != "LEVEL(7)" {
		t.Errorf("unknown level rendered as %q", Level(7).String())
	}
}
