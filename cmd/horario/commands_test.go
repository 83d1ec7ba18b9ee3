package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleListing = "R MLING2232019\tÉtica Profesional\t1721\tMoWe 7:00AM - 8:29AM\t6.00\tUPANA\tEdificio Rodin : R 47\tMixcoac\tPérez, Juan\t30\tAvailable\t5\n" +
	"R MLING2232019\tÉtica Profesional\t1722\tTuTh 9:00AM - 10:29AM\t6.00\tUPANA\tEdificio Rodin : R 12\tMixcoac\tGarcía, Ana\t30\tAvailable\t5\n" +
	"R MLHUM1012019\tFilosofía General\t1801\tMoWe 7:00AM - 8:29AM\t6.00\tUPANA\tEdificio Dalí : R 3\tMixcoac\tLópez, Marta\t30\tAvailable\t5\n"

func writeListingFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listing.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write listing: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCommandTable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeListingFile(t, sampleListing)

	out, _, err := runCLI(t, []string{"parse", path}, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(out, "MLING2232019 - Ética Profesional") {
		t.Fatalf("missing subject in output: %q", out)
	}
	if !strings.Contains(out, "R 47 de Rodin") {
		t.Fatalf("missing normalized room in output: %q", out)
	}
	if !strings.Contains(out, "3 record(s), tabular layout") {
		t.Fatalf("missing summary line in output: %q", out)
	}
}

func TestParseCommandJSONFromStdin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, _, err := runCLI(t, []string{"parse", "-", "--json"}, sampleListing)
	if err != nil {
		t.Fatalf("parse --json: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0]["instructor"] != "Juan Pérez" {
		t.Errorf("instructor = %v, want Juan Pérez", records[0]["instructor"])
	}
}

func TestParseCommandEmptyInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeListingFile(t, "nothing recognizable here\n")

	out, _, err := runCLI(t, []string{"parse", path}, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.Contains(out, "No class records recognized") {
		t.Fatalf("expected empty-input notice, got %q", out)
	}
}

func TestSubjectsCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeListingFile(t, sampleListing)

	out, _, err := runCLI(t, []string{"subjects", path, "--json"}, "")
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}

	var summaries []subjectSummary
	if err := json.Unmarshal([]byte(out), &summaries); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 subjects, got %d: %+v", len(summaries), summaries)
	}
	if summaries[0].Subject != "MLING2232019 - Ética Profesional" || summaries[0].Sections != 2 {
		t.Errorf("first subject = %+v, want 2 sections of Ética Profesional", summaries[0])
	}
	if summaries[1].Sections != 1 {
		t.Errorf("second subject sections = %d, want 1", summaries[1].Sections)
	}
}

func TestPlanCommandJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeListingFile(t, sampleListing)

	out, _, err := runCLI(t, []string{"plan", path, "--json"}, "")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	var combos []combinationView
	if err := json.Unmarshal([]byte(out), &combos); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	// 2 sections x 1 section = 2 combinations; the first pairs two MoWe
	// 7:00AM classes and must be flagged.
	if len(combos) != 2 {
		t.Fatalf("expected 2 combinations, got %d", len(combos))
	}
	if combos[0].ID != "combo-0" || !combos[0].Conflicts {
		t.Errorf("combo-0 = %+v, want a conflicting combination", combos[0])
	}
	if combos[1].Conflicts {
		t.Errorf("combo-1 should not conflict: %+v", combos[1])
	}
	if combos[1].Stats.TotalClasses != 2 || combos[1].Stats.Subjects != 2 {
		t.Errorf("combo-1 stats = %+v", combos[1].Stats)
	}
}

func TestPlanCommandFreeOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeListingFile(t, sampleListing)

	out, _, err := runCLI(t, []string{"plan", path, "--free-only", "--json"}, "")
	if err != nil {
		t.Fatalf("plan --free-only: %v", err)
	}

	var combos []combinationView
	if err := json.Unmarshal([]byte(out), &combos); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(combos) != 1 {
		t.Fatalf("expected 1 conflict-free combination, got %d", len(combos))
	}
	if combos[0].Conflicts {
		t.Errorf("free-only output still conflicts: %+v", combos[0])
	}
}

func TestPlanCommandSubjectFilter(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeListingFile(t, sampleListing)

	out, _, err := runCLI(t, []string{"plan", path, "--subject", "mlhum1012019", "--json"}, "")
	if err != nil {
		t.Fatalf("plan --subject: %v", err)
	}

	var combos []combinationView
	if err := json.Unmarshal([]byte(out), &combos); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if len(combos) != 1 {
		t.Fatalf("expected 1 combination, got %d", len(combos))
	}
	if len(combos[0].Classes) != 1 || combos[0].Classes[0].Subject != "MLHUM1012019 - Filosofía General" {
		t.Errorf("unexpected filtered combination: %+v", combos[0])
	}

	_, _, err = runCLI(t, []string{"plan", path, "--subject", "NOPE101"}, "")
	if err == nil || !strings.Contains(err.Error(), "no records match") {
		t.Fatalf("expected filter mismatch error, got %v", err)
	}
}

func TestPlanCommandCeiling(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeListingFile(t, sampleListing)

	_, _, err := runCLI(t, []string{"plan", path, "--max", "1"}, "")
	if err == nil {
		t.Fatal("expected ceiling error")
	}
	if !strings.Contains(err.Error(), "too many combinations") || !strings.Contains(err.Error(), "--max") {
		t.Fatalf("unexpected ceiling error: %v", err)
	}

	out, _, err := runCLI(t, []string{"plan", path, "--max", "0", "--json"}, "")
	if err != nil {
		t.Fatalf("plan --max 0: %v", err)
	}
	if !strings.Contains(out, "combo-1") {
		t.Fatalf("expected full generation with disabled ceiling: %q", out)
	}
}

func TestPlanCommandTableOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeListingFile(t, sampleListing)

	out, _, err := runCLI(t, []string{"plan", path}, "")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "== combo-0 (has conflicts) ==") {
		t.Fatalf("missing conflict header: %q", out)
	}
	if !strings.Contains(out, "== combo-1 (free of conflicts) ==") {
		t.Fatalf("missing conflict-free header: %q", out)
	}
	if !strings.Contains(out, "2 combination(s)") {
		t.Fatalf("missing trailer: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("buffer output must not be colorized: %q", out)
	}
}
