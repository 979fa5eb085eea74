// Package output writes the standardized document and the validation log.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"phonestd/internal/formatter"
	"phonestd/internal/models"
	"phonestd/internal/normalizer"
)

// File name timestamp layout.
const FileTimestampLayout = "20060102_150405"

// Artifacts describes what a Write call produced.
type Artifacts struct {
	Document     []byte
	Log          string
	DocumentPath string
	LogPath      string
	Written      bool
}

// Writer renders batch results and stores them under a directory.
type Writer struct {
	dir            string
	indent         string
	writeUnchanged bool
	now            func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

// WithWriteUnchanged writes artifacts even for batches with nothing to report.
func WithWriteUnchanged(v bool) Option {
	return func(w *Writer) { w.writeUnchanged = v }
}

// NewWriter creates a writer storing files in dir, indenting JSON with indent.
func NewWriter(dir, indent string, opts ...Option) *Writer {
	w := &Writer{
		dir:    dir,
		indent: indent,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Render builds the output document bytes and log text without touching disk.
func (w *Writer) Render(inputName string, result *normalizer.BatchResult) (*Artifacts, error) {
	at := w.now()

	doc, err := models.Encode(result.Output, w.indent)
	if err != nil {
		return nil, err
	}

	return &Artifacts{
		Document:     doc,
		Log:          formatter.FormatLog(LogReport(inputName, at, result)),
		DocumentPath: filepath.Join(w.dir, OutputFilename(inputName, at)),
		LogPath:      filepath.Join(w.dir, LogFilename(at)),
	}, nil
}

// Write renders result and saves both files. Batches with no corrections
// and no errors are not written unless the writer was told to.
func (w *Writer) Write(inputName string, result *normalizer.BatchResult) (*Artifacts, error) {
	art, err := w.Render(inputName, result)
	if err != nil {
		return nil, err
	}

	if !result.Modified && !result.HasErrors() && !w.writeUnchanged {
		return art, nil
	}

	// Ensure directory exists
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(art.DocumentPath, art.Document, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output document: %w", err)
	}

	if err := os.WriteFile(art.LogPath, []byte(art.Log), 0644); err != nil {
		return nil, fmt.Errorf("failed to write validation log: %w", err)
	}

	art.Written = true

	return art, nil
}

// OutputFilename returns "<base>_validated_<timestamp>.json" where base is
// inputName without directory and last extension.
func OutputFilename(inputName string, at time.Time) string {
	base := filepath.Base(inputName)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return fmt.Sprintf("%s_validated_%s.json", base, at.Format(FileTimestampLayout))
}

// LogFilename returns "validation_log_<timestamp>.txt".
func LogFilename(at time.Time) string {
	return fmt.Sprintf("validation_log_%s.txt", at.Format(FileTimestampLayout))
}

// LogReport maps a batch result onto the validation log fields.
func LogReport(inputName string, at time.Time, result *normalizer.BatchResult) formatter.LogReport {
	return formatter.LogReport{
		Filename:    filepath.Base(inputName),
		GeneratedAt: at,
		Errors:      result.Messages(),
		Modified:    result.Modified,
	}
}

// Summary maps a batch result onto the console summary.
func Summary(result *normalizer.BatchResult) formatter.Summary {
	rows := make([]formatter.SummaryRow, 0, len(result.Errors))
	for _, e := range result.Errors {
		rows = append(rows, formatter.SummaryRow{Name: e.RecordName, Phone: e.Phone, Reason: e.Reason})
	}

	return formatter.Summary{
		TotalRecords:     result.TotalRecords,
		CorrectedRecords: result.CorrectedRecords,
		Modified:         result.Modified,
		Rows:             rows,
	}
}
