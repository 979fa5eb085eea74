package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"phonestd/internal/normalizer"
)

var fixedTime = time.Date(2026, 10, 14, 8, 30, 15, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func process(t *testing.T, input string) *normalizer.BatchResult {
	t.Helper()

	result, err := normalizer.NewProcessor().ProcessBytes([]byte(input))
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	return result
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"people.json", "people_validated_20261014_083015.json"},
		{"/data/in/crm.export.json", "crm.export_validated_20261014_083015.json"},
		{"contacts", "contacts_validated_20261014_083015.json"},
	}

	for _, tt := range tests {
		if got := OutputFilename(tt.input, fixedTime); got != tt.want {
			t.Errorf("OutputFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if got := LogFilename(fixedTime); got != "validation_log_20261014_083015.txt" {
		t.Errorf("LogFilename = %q", got)
	}
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := NewWriter(dir, "  ", WithClock(fixedClock))

	result := process(t, `{"people":[{"name":"A","phone":"0501234567"},{"name":"B","phone":"12"}]}`)

	art, err := w.Write("uploads/people.json", result)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !art.Written {
		t.Fatal("Write did not write files")
	}

	doc, err := os.ReadFile(filepath.Join(dir, "people_validated_20261014_083015.json"))
	if err != nil {
		t.Fatalf("output document missing: %v", err)
	}

	if !strings.Contains(string(doc), `"phone": "+971501234567"`) {
		t.Errorf("output document not standardized:\n%s", doc)
	}

	log, err := os.ReadFile(filepath.Join(dir, "validation_log_20261014_083015.txt"))
	if err != nil {
		t.Fatalf("validation log missing: %v", err)
	}

	want := "Validation Log for people.json\n" +
		"Generated on: 2026-10-14 08:30:15\n\n" +
		"Errors found:\n" +
		"- Error for B: Invalid UAE number format: 12\n" +
		"\nPhone numbers were standardized in the output file.\n"

	if string(log) != want {
		t.Errorf("log =\n%q\nwant\n%q", log, want)
	}
}

func TestWriter_Write_NothingToReport(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "  ", WithClock(fixedClock))

	result := process(t, `{"people":[{"name":"A","phone":"+971501234567"}]}`)

	art, err := w.Write("people.json", result)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if art.Written {
		t.Error("Write should skip clean batches")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected empty output directory, found %d entries", len(entries))
	}

	forced := NewWriter(dir, "", WithClock(fixedClock), WithWriteUnchanged(true))

	art, err = forced.Write("people.json", result)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !art.Written {
		t.Error("WithWriteUnchanged should force writing")
	}

	if !strings.Contains(art.Log, "No validation errors found.") {
		t.Errorf("log = %q", art.Log)
	}

	if strings.Contains(art.Log, "standardized") {
		t.Errorf("unmodified log mentions standardization: %q", art.Log)
	}
}

func TestSummary(t *testing.T) {
	result := process(t, `{"people":[{"name":"A","phone":"0501234567"},{"name":"B","phone":"(12)"}]}`)

	s := Summary(result)
	if s.TotalRecords != 2 || s.CorrectedRecords != 1 || !s.Modified {
		t.Errorf("Summary counters = %+v", s)
	}

	if len(s.Rows) != 1 || s.Rows[0].Phone != "(12)" || s.Rows[0].Name != "B" {
		t.Errorf("Summary rows = %+v", s.Rows)
	}
}
