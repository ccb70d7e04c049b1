package checker

import (
	"strings"
	"unicode"

	"github.com/nucheck/nucheck/internal/nuchecker"
)

// Severity is the bucket a message falls into when tallying a report.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
	SeverityNonDocument
)

// classifyMessage maps the checker's type string onto a severity. Unknown and
// missing types count as informational, matching the checker's own default.
func classifyMessage(m nuchecker.Message) Severity {
	switch m.Type {
	case nuchecker.TypeError:
		return SeverityError
	case nuchecker.TypeNonDocumentError:
		return SeverityNonDocument
	default:
		return SeverityInfo
	}
}

// MessageCounts summarizes one validation report.
type MessageCounts struct {
	Errors            int
	Infos             int
	NonDocumentErrors int
}

// CountMessages tallies every message of the report into exactly one bucket.
func CountMessages(report *nuchecker.ValidationReport) MessageCounts {
	var counts MessageCounts
	for _, m := range report.Messages {
		switch classifyMessage(m) {
		case SeverityError:
			counts.Errors++
		case SeverityNonDocument:
			counts.NonDocumentErrors++
		default:
			counts.Infos++
		}
	}
	return counts
}

// LocationSpan is the resolved source location of one message. A nil field
// means the checker reported no value for that axis.
type LocationSpan struct {
	FirstLine   *int
	LastLine    *int
	FirstColumn *int
	LastColumn  *int
}

// ResolveSpan picks the first/last location fields of a message, falling back
// to the single line/column field independently per axis. Presence means the
// key was present in the JSON: an explicit 0 is a value and does not fall
// through.
func ResolveSpan(m nuchecker.Message) LocationSpan {
	span := LocationSpan{
		FirstLine:   m.FirstLine,
		LastLine:    m.LastLine,
		FirstColumn: m.FirstColumn,
		LastColumn:  m.LastColumn,
	}
	if span.FirstLine == nil {
		span.FirstLine = m.Line
	}
	if span.LastLine == nil {
		span.LastLine = m.Line
	}
	if span.FirstColumn == nil {
		span.FirstColumn = m.Column
	}
	if span.LastColumn == nil {
		span.LastColumn = m.Column
	}
	return span
}

// NormalizeExtract removes blank and whitespace-only lines from a code
// extract and right-trims the lines it keeps. Order and leading indentation
// are preserved. Empty input yields empty output.
func NormalizeExtract(text string) string {
	if text == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, strings.TrimRightFunc(line, unicode.IsSpace))
	}

	return strings.Join(kept, "\n")
}
