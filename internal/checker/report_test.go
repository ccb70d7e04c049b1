package checker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nucheck/nucheck/internal/nuchecker"
)

func TestFormatLocation(t *testing.T) {
	testCases := []struct {
		name     string
		span     LocationSpan
		expected string
	}{
		{
			name: "equal lines with column range",
			span: LocationSpan{
				FirstLine: intPtr(4), LastLine: intPtr(4),
				FirstColumn: intPtr(2), LastColumn: intPtr(9),
			},
			expected: " (line 4, columns 2-9)",
		},
		{
			name: "single line and column",
			span: LocationSpan{
				FirstLine: intPtr(7), LastLine: intPtr(7),
				FirstColumn: intPtr(3), LastColumn: intPtr(3),
			},
			expected: " (line 7, column: 3)",
		},
		{
			name: "line range only",
			span: LocationSpan{
				FirstLine: intPtr(2), LastLine: intPtr(5),
			},
			expected: " (lines 2-5)",
		},
		{
			name:     "only last line",
			span:     LocationSpan{LastLine: intPtr(11)},
			expected: " (line 11)",
		},
		{
			name:     "only last column",
			span:     LocationSpan{LastColumn: intPtr(6)},
			expected: " (column: 6)",
		},
		{
			name:     "no location",
			span:     LocationSpan{},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatLocation(tc.span))
		})
	}
}

func TestWriteReportSummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	report := &nuchecker.ValidationReport{}

	WriteReport(&buf, "https://example.org/", report, CountMessages(report))

	assert.Equal(t, "https://example.org/\n  Errors: 0 | Info/Warnings: 0 | Non-doc: 0\n", buf.String())
}

func TestWriteReportSkipsDetailWithoutErrors(t *testing.T) {
	var buf bytes.Buffer
	report := &nuchecker.ValidationReport{Messages: []nuchecker.Message{
		{Type: "info", Message: "consider a lang attribute"},
	}}

	WriteReport(&buf, "https://example.org/", report, CountMessages(report))

	assert.Equal(t, "https://example.org/\n  Errors: 0 | Info/Warnings: 1 | Non-doc: 0\n", buf.String())
}

func TestWriteReportErrorDetails(t *testing.T) {
	var buf bytes.Buffer
	report := &nuchecker.ValidationReport{Messages: []nuchecker.Message{
		{
			Type:        "error",
			Message:     " Unclosed element div. ",
			FirstLine:   intPtr(4),
			LastLine:    intPtr(4),
			FirstColumn: intPtr(2),
			LastColumn:  intPtr(9),
			Extract:     "  <div>\n\n   \n</div>",
		},
		{Type: "info", Message: "skipped"},
		{
			Type:    "error",
			Message: "Stray end tag p.",
			Line:    intPtr(7),
			Column:  intPtr(3),
		},
		{
			Type:    "error",
			Message: "No location here.",
		},
	}}

	WriteReport(&buf, "https://example.org/page", report, CountMessages(report))

	expected := "https://example.org/page\n" +
		"  Errors: 3 | Info/Warnings: 1 | Non-doc: 0\n" +
		"    - ERROR (line 4, columns 2-9): Unclosed element div.\n" +
		"      Extract:\n<div>\n</div>\n\n" +
		"    - ERROR (line 7, column: 3): Stray end tag p.\n" +
		"    - ERROR: No location here.\n"
	assert.Equal(t, expected, buf.String())
}
