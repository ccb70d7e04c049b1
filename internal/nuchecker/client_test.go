package nuchecker

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nucheck/nucheck/pkg/shared/errors"
)

func TestValidateRequestShape(t *testing.T) {
	var gotQuery map[string]string
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"doc": r.URL.Query().Get("doc"),
			"out": r.URL.Query().Get("out"),
		}
		gotUserAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, `{"messages":[{"type":"error","message":"bad","line":2,"column":5}]}`)
	}))
	defer server.Close()

	client := New(resty.New(), server.URL, "nucheck/test")
	report, err := client.Validate(context.Background(), "https://example.org/")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"doc": "https://example.org/", "out": "json"}, gotQuery)
	assert.Equal(t, "nucheck/test", gotUserAgent)

	require.Len(t, report.Messages, 1)
	m := report.Messages[0]
	assert.Equal(t, TypeError, m.Type)
	assert.Equal(t, "bad", m.Message)
	require.NotNil(t, m.Line)
	assert.Equal(t, 2, *m.Line)
	assert.Nil(t, m.FirstLine)
}

func TestValidateNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(resty.New(), server.URL, "nucheck/test")
	_, err := client.Validate(context.Background(), "https://example.org/")
	require.Error(t, err)

	var transportErr *errors.TransportError
	require.True(t, stderrors.As(err, &transportErr))
	assert.Equal(t, http.StatusServiceUnavailable, transportErr.StatusCode)
	assert.Equal(t, "https://example.org/", transportErr.URL)
}

func TestValidateUnreachableService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(resty.New(), server.URL, "nucheck/test")
	_, err := client.Validate(context.Background(), "https://example.org/")
	require.Error(t, err)

	var transportErr *errors.TransportError
	require.True(t, stderrors.As(err, &transportErr))
	assert.NotNil(t, transportErr.Err)
}

func TestValidateInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>definitely not json</html>")
	}))
	defer server.Close()

	client := New(resty.New(), server.URL, "nucheck/test")
	_, err := client.Validate(context.Background(), "https://example.org/")
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.True(t, stderrors.As(err, &parseErr))
	assert.Equal(t, "https://example.org/", parseErr.URL)
}
