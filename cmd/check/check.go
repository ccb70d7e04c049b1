package check

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/nucheck/nucheck/internal/checker"
	"github.com/nucheck/nucheck/internal/nuchecker"
	"github.com/nucheck/nucheck/pkg/shared/config"
	"github.com/nucheck/nucheck/pkg/shared/errors"
	"github.com/nucheck/nucheck/pkg/shared/httpclient"
)

// Global variables for configuration and command arguments
var (
	AppConfig    *config.Config
	logger       hclog.Logger
	checkOptions CheckOptions

	exampleCheckUsage = `  # Validate one deployed URL
  nucheck check https://example.org/

  # Validate several URLs with a shorter request timeout
  nucheck check --timeout 10 https://example.org/ https://example.org/about.html`
)

// CheckOptions holds the flag values of the check command.
type CheckOptions struct {
	Timeout int
}

// CheckCmd represents the command for the check command.
var CheckCmd = &cobra.Command{
	Use:                   "check [--timeout SECONDS] URL [URL...]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleCheckUsage,
	Short:                 "Validate deployed URLs with the W3C Nu HTML Checker",
	RunE:                  runCheckCommand,
}

// Init initializes the global configuration and logger for the check command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runCheckCommand(cmd *cobra.Command, args []string) error {
	if err := validateCheckArgs(&checkOptions, args); err != nil {
		logger.Error("invalid check arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid check arguments: %w", err), 1)
	}

	httpc := httpclient.InitializeRestyClient(logger, AppConfig)
	if cmd.Flags().Changed("timeout") {
		httpc.SetTimeout(time.Duration(checkOptions.Timeout) * time.Second)
	}

	client := nuchecker.New(httpc, AppConfig.Validator.Endpoint, AppConfig.Validator.UserAgent)
	c := checker.New(client, logger, os.Stdout)

	if exitCode := c.Run(cmd.Context(), args); exitCode != 0 {
		return &errors.CommandError{ExitCode: exitCode}
	}

	logger.Debug("check command completed", "urls", len(args))
	return nil
}

func init() {
	CheckCmd.Flags().IntVar(&checkOptions.Timeout, "timeout", 30, "Request timeout in seconds (default: 30).")
	CheckCmd.Flags().BoolP("help", "h", false, "Show help for the check command.")
}
