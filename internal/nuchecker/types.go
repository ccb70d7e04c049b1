package nuchecker

// Message types reported by the checker. Anything else counts as informational.
const (
	TypeError            = "error"
	TypeInfo             = "info"
	TypeNonDocumentError = "non-document-error"
)

// ValidationReport is the JSON document the Nu checker returns for one URL.
// Message order is preserved as received.
type ValidationReport struct {
	Messages []Message `json:"messages"`
}

// Message is one diagnostic entry of a validation report. Location fields are
// pointers because the checker omits keys it has no value for, and 0 is a
// value rather than a gap.
type Message struct {
	Type        string `json:"type"`
	SubType     string `json:"subType,omitempty"`
	URL         string `json:"url,omitempty"`
	Message     string `json:"message,omitempty"`
	Extract     string `json:"extract,omitempty"`
	FirstLine   *int   `json:"firstLine,omitempty"`
	LastLine    *int   `json:"lastLine,omitempty"`
	Line        *int   `json:"line,omitempty"`
	FirstColumn *int   `json:"firstColumn,omitempty"`
	LastColumn  *int   `json:"lastColumn,omitempty"`
	Column      *int   `json:"column,omitempty"`
}
