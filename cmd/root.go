package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nucheck/nucheck/cmd/check"
	"github.com/nucheck/nucheck/cmd/version"
	"github.com/nucheck/nucheck/pkg/shared/config"
	"github.com/nucheck/nucheck/pkg/shared/errors"
	"github.com/nucheck/nucheck/pkg/shared/logger"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "nucheck [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Nucheck validates deployed URLs with the W3C Nu HTML Checker.",
		Long: `Nucheck submits deployed document URLs to the W3C Nu HTML Checker,
tallies the diagnostics of each JSON report, and prints a per-URL summary
with detailed error listings.
`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(check.CheckCmd)
}

// Execute runs the command tree and maps failures onto process exit codes.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *errors.CommandError
		if stderrors.As(err, &cmdErr) {
			if cmdErr.CommonError != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", cmdErr.CommonError)
			}
			return cmdErr.ExitCode
		}
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	explicit := cfgFile != ""
	if !explicit {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		// Only an explicitly requested config file is required to exist.
		if !explicit && os.IsNotExist(err) {
			AppConfig = config.DefaultConfig()
		} else {
			fmt.Fprintf(os.Stderr, "failed to initialize configuration: %v\n", err)
			os.Exit(1)
		}
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewLogger(AppConfig, "nucheck")
	check.Init(AppConfig, log)
}
