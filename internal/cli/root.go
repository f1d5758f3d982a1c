package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sherlock/config"
	"sherlock/internal/logger"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
	log      *logger.ConsoleLogger
}

// NewRootCmd builds the sherlock command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "sherlock",
		Short: "Sherlock - inspect directory trees",
		Long: `Sherlock walks a directory tree, filters the files it finds and reports
statistics about them.

Example usage:
  sherlock line-count . -x go                  # Largest Go files
  sherlock line-count . -x rs -f target        # Skip anything under target/
  sherlock line-count . -x py --grouped -t 5   # Line totals per subdirectory`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./sherlock.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (default from config)")

	rootCmd.AddCommand(newLineCountCmd(a))
	rootCmd.AddCommand(newReportsCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		var wd string
		wd, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		a.cfg, err = config.LoadFromDir(wd)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := a.cfg.Logging.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.log = logger.NewConsoleLogger(cmd.ErrOrStderr(), level)
	return nil
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
