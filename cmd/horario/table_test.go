package main

import (
	"io"
	"strings"
	"testing"

	"horario/internal/schedule"
)

func TestClassTable(t *testing.T) {
	out := classTable([]schedule.Class{{
		Subject:    "MLING2232019 - Ética Profesional",
		Section:    "1721",
		Days:       []string{"Lun", "Miérc"},
		Start:      "7:00AM",
		End:        "8:29AM",
		Room:       "R 47 de Rodin",
		Instructor: "Juan Pérez",
	}})

	// StyleRounded uppercases headers.
	if !strings.Contains(out, "SUBJECT") || !strings.Contains(out, "INSTRUCTOR") {
		t.Fatalf("missing headers in table output: %q", out)
	}
	if !strings.Contains(out, "Lun, Miérc") {
		t.Fatalf("days not joined in table output: %q", out)
	}
	if !strings.Contains(out, "7:00AM - 8:29AM") {
		t.Fatalf("schedule column missing in table output: %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) < 4 {
		t.Fatalf("expected bordered table, got %d lines", len(lines))
	}
}

func TestSubjectTable(t *testing.T) {
	out := subjectTable([]subjectSummary{
		{Subject: "MLING2232019 - Ética Profesional", Sections: 2},
		{Subject: "MLHUM1012019 - Filosofía General", Sections: 1},
	})
	if !strings.Contains(out, "SECTIONS") {
		t.Fatalf("missing header in table output: %q", out)
	}
	if !strings.Contains(out, "MLHUM1012019 - Filosofía General") {
		t.Fatalf("missing subject row in table output: %q", out)
	}
}

func TestShouldColorize(t *testing.T) {
	if !shouldColorize(io.Discard, "always") {
		t.Error("always must force color on")
	}
	if shouldColorize(io.Discard, "never") {
		t.Error("never must force color off")
	}
	if shouldColorize(io.Discard, "auto") {
		t.Error("auto on a non-file writer must disable color")
	}
}

func TestColorize(t *testing.T) {
	if got := colorize("x", ansiRed, false); got != "x" {
		t.Errorf("disabled colorize = %q", got)
	}
	if got := colorize("x", ansiRed, true); got != ansiRed+"x"+ansiReset {
		t.Errorf("enabled colorize = %q", got)
	}
}
