package check

import (
	"fmt"
	"net/url"
)

// validateCheckArgs validates the arguments provided to the check command.
func validateCheckArgs(options *CheckOptions, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one URL to validate is required")
	}

	if options.Timeout <= 0 {
		return fmt.Errorf("the 'timeout' flag must be a positive number of seconds")
	}

	for _, arg := range args {
		u, err := url.ParseRequestURI(arg)
		if err != nil {
			return fmt.Errorf("provided URL '%s' is not valid: %w", arg, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("provided URL '%s' must use http or https", arg)
		}
	}

	return nil
}
