package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phonestd/internal/phone"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "people.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	return path
}

func TestProcessCommand(t *testing.T) {
	input := writeInput(t, `{"people":[{"name":"A","phone":"0501234567"},{"name":"B","phone":"999"}]}`)
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := run(t, "process", input, "--output_dir", outDir, "--log_level", "error")
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	for _, want := range []string{"Total records processed: 2", "Records corrected: 1", "| B ", "Saved: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	docs, _ := filepath.Glob(filepath.Join(outDir, "people_validated_*.json"))
	logs, _ := filepath.Glob(filepath.Join(outDir, "validation_log_*.txt"))

	if len(docs) != 1 || len(logs) != 1 {
		t.Fatalf("artifacts = %v %v, want one of each", docs, logs)
	}
}

func TestProcessCommand_AlreadyCanonical(t *testing.T) {
	input := writeInput(t, `{"people":[{"name":"A","phone":"+971501234567"}]}`)
	outDir := t.TempDir()

	out, err := run(t, "process", input, "--output_dir", outDir, "--log_level", "error")
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if !strings.Contains(out, "All phone numbers are already in the correct format!") {
		t.Errorf("output = %q", out)
	}
}

func TestProcessCommand_Stdout(t *testing.T) {
	input := writeInput(t, `{"people":[{"name":"A","phone":"0501234567"}]}`)

	out, err := run(t, "process", input, "--stdout", "--compact", "--log_level", "error")
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	want := `{"people":[{"name":"A","phone":"+971501234567"}]}` + "\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestProcessCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		wantErr string
	}{
		{name: "Invalid JSON", content: `{"people": [`, wantErr: "invalid JSON file"},
		{name: "Missing people", content: `{"users": []}`, wantErr: "malformed document"},
		{name: "Unsupported country", content: `{"people": []}`, args: []string{"--country", "966"}, wantErr: "unsupported country"},
		{name: "Unknown country", content: `{"people": []}`, args: []string{"--country", "999"}, wantErr: "not an assigned calling code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeInput(t, tt.content)
			args := append([]string{"process", input, "--stdout", "--log_level", "error"}, tt.args...)

			_, err := run(t, args...)
			if err == nil {
				t.Fatal("expected error")
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeCommand(t *testing.T) {
	out, err := run(t, "normalize", "0501234567", "971502345678")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	want := "0501234567\t+971501234567\n971502345678\t+971502345678\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = run(t, "normalize", "5551234")
	if !errors.Is(err, errSomeInvalid) {
		t.Errorf("error = %v, want %v", err, errSomeInvalid)
	}

	if !strings.Contains(out, "Invalid number length: 5551234") {
		t.Errorf("output = %q", out)
	}

	if _, err := run(t, "normalize", "--country", "965", "123"); !errors.Is(err, phone.ErrUnsupportedCountry) {
		t.Errorf("error = %v, want %v", err, phone.ErrUnsupportedCountry)
	}
}

func TestCountriesCommand(t *testing.T) {
	out, err := run(t, "countries")
	if err != nil {
		t.Fatalf("countries failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "UAE (+971)") || !strings.HasSuffix(lines[0], " supported") {
		t.Errorf("first line = %q", lines[0])
	}

	if !strings.Contains(out, "Oman (+968)") || !strings.Contains(out, "not yet supported") {
		t.Errorf("output = %q", out)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "phonestd.yaml")

	cfgYAML := "output:\n  dir: " + filepath.Join(dir, "out") + "\n  write_unchanged: true\nlogging:\n  level: error\n"
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	input := writeInput(t, `{"people":[{"name":"A","phone":"+971501234567"}]}`)

	out, err := run(t, "process", input, "--config", cfgPath)
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if !strings.Contains(out, "Saved: ") {
		t.Errorf("write_unchanged from config ignored:\n%s", out)
	}
}
