// Package formatter renders batch results as the validation log and as a
// console summary.
package formatter

import (
	"strings"
	"time"
)

// Log timestamp layout.
const TimestampLayout = "2006-01-02 15:04:05"

// LogReport holds what the validation log needs.
type LogReport struct {
	Filename    string
	GeneratedAt time.Time
	Errors      []string
	Modified    bool
}

// FormatLog renders the validation log text.
func FormatLog(r LogReport) string {
	var sb strings.Builder

	sb.WriteString("Validation Log for " + r.Filename + "\n")
	sb.WriteString("Generated on: " + r.GeneratedAt.Format(TimestampLayout) + "\n\n")

	if len(r.Errors) > 0 {
		sb.WriteString("Errors found:\n")

		for _, msg := range r.Errors {
			sb.WriteString("- " + msg + "\n")
		}
	} else {
		sb.WriteString("No validation errors found.\n")
	}

	if r.Modified {
		sb.WriteString("\nPhone numbers were standardized in the output file.\n")
	}

	return sb.String()
}
