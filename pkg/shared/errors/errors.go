package errors

import "fmt"

// TransportError indicates the validator service could not be reached or
// answered with a non-success HTTP status.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface for TransportError.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request for %q failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request for %q failed with status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError creates a new TransportError instance.
func NewTransportError(url string, statusCode int, err error) error {
	return &TransportError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ParseError indicates the validator answered with a body that is not valid JSON.
type ParseError struct {
	URL string
	Err error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON report for %q: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a new ParseError instance.
func NewParseError(url string, err error) error {
	return &ParseError{
		URL: url,
		Err: err,
	}
}

// CommandError represents a failed command, carrying the process exit code.
type CommandError struct {
	ExitCode    int
	CommonError string
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError creates a new CommandError encapsulating the cause and exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
	}
}
