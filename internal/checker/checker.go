package checker

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/nucheck/nucheck/internal/nuchecker"
)

// Checker runs the fetch, classify and report pipeline for document URLs.
type Checker struct {
	client *nuchecker.Client
	logger hclog.Logger
	out    io.Writer
}

// New creates a Checker writing its reports to out.
func New(client *nuchecker.Client, logger hclog.Logger, out io.Writer) *Checker {
	return &Checker{
		client: client,
		logger: logger,
		out:    out,
	}
}

// CheckOne validates a single URL and prints its report. It returns 1 when
// the document has error-severity messages or could not be validated at all,
// 0 otherwise. Fetch and parse failures are reported inline so the remaining
// URLs still run.
func (c *Checker) CheckOne(ctx context.Context, docURL string) int {
	report, err := c.client.Validate(ctx, docURL)
	if err != nil {
		c.logger.Error("validation request failed", "url", docURL, "error", err)
		fmt.Fprintf(c.out, "could not validate %s: %v\n", docURL, err)
		return 1
	}

	counts := CountMessages(report)
	WriteReport(c.out, docURL, report, counts)

	if counts.Errors > 0 {
		return 1
	}
	return 0
}

// Run processes the URLs serially in input order and returns the worst
// per-URL code.
func (c *Checker) Run(ctx context.Context, urls []string) int {
	exitCode := 0
	for _, docURL := range urls {
		code := c.CheckOne(ctx, docURL)
		if code > exitCode {
			exitCode = code
		}
		c.logger.Debug("url processed", "url", docURL, "code", code)
	}
	return exitCode
}
