package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCheckArgs(t *testing.T) {
	testCases := []struct {
		name    string
		options CheckOptions
		args    []string
		wantErr string
	}{
		{
			name:    "single valid URL",
			options: CheckOptions{Timeout: 30},
			args:    []string{"https://example.org/"},
		},
		{
			name:    "multiple valid URLs",
			options: CheckOptions{Timeout: 30},
			args:    []string{"https://example.org/", "http://example.org/about.html"},
		},
		{
			name:    "no URLs",
			options: CheckOptions{Timeout: 30},
			args:    nil,
			wantErr: "at least one URL",
		},
		{
			name:    "non-positive timeout",
			options: CheckOptions{Timeout: 0},
			args:    []string{"https://example.org/"},
			wantErr: "timeout",
		},
		{
			name:    "malformed URL",
			options: CheckOptions{Timeout: 30},
			args:    []string{"not a url"},
			wantErr: "is not valid",
		},
		{
			name:    "unsupported scheme",
			options: CheckOptions{Timeout: 30},
			args:    []string{"ftp://example.org/"},
			wantErr: "http or https",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCheckArgs(&tc.options, tc.args)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
