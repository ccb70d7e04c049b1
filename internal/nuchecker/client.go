package nuchecker

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/nucheck/nucheck/pkg/shared/errors"
)

// Client talks to a Nu HTML Checker instance.
type Client struct {
	httpc     *resty.Client
	endpoint  string
	userAgent string
}

// New creates a checker client for the given endpoint. The resty client
// carries the timeout, TLS and proxy settings.
func New(httpc *resty.Client, endpoint, userAgent string) *Client {
	return &Client{
		httpc:     httpc,
		endpoint:  endpoint,
		userAgent: userAgent,
	}
}

// Validate submits one document URL to the checker and returns the parsed
// report. The request is issued exactly once, with no retry.
func (c *Client) Validate(ctx context.Context, docURL string) (*ValidationReport, error) {
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"doc": docURL,
			"out": "json",
		}).
		SetHeader("User-Agent", c.userAgent).
		Get(c.endpoint)
	if err != nil {
		return nil, errors.NewTransportError(docURL, 0, err)
	}
	if !resp.IsSuccess() {
		return nil, errors.NewTransportError(docURL, resp.StatusCode(), nil)
	}

	var report ValidationReport
	if err := json.Unmarshal(resp.Body(), &report); err != nil {
		return nil, errors.NewParseError(docURL, err)
	}
	return &report, nil
}
