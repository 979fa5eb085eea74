package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SummaryRow is one failing record in the console table.
type SummaryRow struct {
	Name   string
	Phone  string
	Reason string
}

// Summary holds the batch counters and failures shown on the console.
type Summary struct {
	TotalRecords     int
	CorrectedRecords int
	Modified         bool
	Rows             []SummaryRow
}

var summaryHeader = []string{"Record", "Phone", "Reason"}

// FormatSummary renders counters followed by an aligned table of failures.
func FormatSummary(s Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Total records processed: %d\n", s.TotalRecords)

	if s.Modified {
		fmt.Fprintf(&sb, "Records corrected: %d\n", s.CorrectedRecords)
	}

	if len(s.Rows) == 0 {
		return sb.String()
	}

	table := [][]string{summaryHeader}
	for _, row := range s.Rows {
		table = append(table, []string{row.Name, row.Phone, row.Reason})
	}

	sb.WriteString("\nValidation Errors Found:\n")

	for _, line := range formatTable(table) {
		sb.WriteString(line + "\n")
	}

	return sb.String()
}

// formatTable lays rows out as a markdown-style table padded by display
// width. The first row is the header.
func formatTable(table [][]string) []string {
	colWidths := make([]int, len(summaryHeader))

	for _, row := range table {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	// Ensure min width for separator (usually 3 dashes "---")
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	lines := make([]string, 0, len(table)+1)

	for i, row := range table {
		lines = append(lines, formatRow(row, colWidths))

		if i == 0 {
			sep := make([]string, len(colWidths))
			for j, w := range colWidths {
				sep[j] = strings.Repeat("-", w)
			}

			lines = append(lines, formatRow(sep, colWidths))
		}
	}

	return lines
}

func formatRow(cells []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(cells) {
			content = cells[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
