package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corenet-sim/torusnet/diag"
)

func TestDebugfRespectsToggle(t *testing.T) {
	var buf bytes.Buffer
	l := diag.New(&buf, map[diag.Subsystem]bool{diag.Topology: true})

	l.Debugf(diag.Routing, "should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected no output for disabled subsystem, got %q", buf.String())
	}

	l.Debugf(diag.Topology, "hello %d", 42)
	if !strings.Contains(buf.String(), "hello 42") {
		t.Fatalf("expected message in output, got %q", buf.String())
	}
}

func TestWarnAlwaysLogs(t *testing.T) {
	var buf bytes.Buffer
	l := diag.New(&buf, nil)
	l.Warnf(diag.Routing, "fault routed at %d", 3)
	if !strings.Contains(buf.String(), "fault routed at 3") {
		t.Fatalf("expected warning to bypass toggle, got %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := diag.Nop()
	if l.Enabled(diag.Topology) {
		t.Fatal("Nop logger should have no subsystems enabled")
	}
	// Should not panic.
	l.Debugf(diag.Topology, "x")
	l.Warnf(diag.Alloc, "y")
}
