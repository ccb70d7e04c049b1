package checker

import (
	"fmt"
	"io"
	"strings"

	"github.com/nucheck/nucheck/internal/nuchecker"
)

// WriteReport prints the per-URL block: the URL, a one-line severity summary
// and, when the report carries error-severity messages, one detail line per
// error in report order.
func WriteReport(w io.Writer, docURL string, report *nuchecker.ValidationReport, counts MessageCounts) {
	fmt.Fprintln(w, docURL)
	fmt.Fprintf(w, "  Errors: %d | Info/Warnings: %d | Non-doc: %d\n",
		counts.Errors, counts.Infos, counts.NonDocumentErrors)

	if counts.Errors == 0 {
		return
	}
	for _, m := range report.Messages {
		if classifyMessage(m) != SeverityError {
			continue
		}
		writeErrorDetail(w, m)
	}
}

func writeErrorDetail(w io.Writer, m nuchecker.Message) {
	location := formatLocation(ResolveSpan(m))
	text := strings.TrimSpace(m.Message)
	fmt.Fprintf(w, "    - ERROR%s: %s\n", location, text)

	extract := strings.TrimSpace(NormalizeExtract(m.Extract))
	if extract != "" {
		fmt.Fprintf(w, "      Extract:\n%s\n\n", extract)
	}
}

// formatLocation renders the parenthesized location clause of a detail line.
// Each axis is omitted when its values are absent; with no axis at all the
// result is empty.
func formatLocation(span LocationSpan) string {
	var clauses []string

	switch {
	case span.FirstLine != nil && span.LastLine != nil:
		if *span.FirstLine == *span.LastLine {
			clauses = append(clauses, fmt.Sprintf("line %d", *span.LastLine))
		} else {
			clauses = append(clauses, fmt.Sprintf("lines %d-%d", *span.FirstLine, *span.LastLine))
		}
	case span.LastLine != nil:
		clauses = append(clauses, fmt.Sprintf("line %d", *span.LastLine))
	}

	switch {
	case span.FirstColumn != nil && span.LastColumn != nil:
		if *span.FirstColumn == *span.LastColumn {
			clauses = append(clauses, fmt.Sprintf("column: %d", *span.LastColumn))
		} else {
			clauses = append(clauses, fmt.Sprintf("columns %d-%d", *span.FirstColumn, *span.LastColumn))
		}
	case span.LastColumn != nil:
		clauses = append(clauses, fmt.Sprintf("column: %d", *span.LastColumn))
	}

	if len(clauses) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s)", strings.Join(clauses, ", "))
}
