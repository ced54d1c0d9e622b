// Package commands implements the gosetsid command-line interface
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gosetsid/internal/config"
	"gosetsid/internal/detach"
	"gosetsid/internal/version"
)

var (
	logger     = logrus.New()
	cfgManager = config.New()

	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gosetsid <session-file> <command> [args...]",
	Short: "Run a command in its own session",
	Long: `gosetsid starts a command in a new OS session, detached from the invoking
terminal, and records the new session id to a file before the command runs.

macOS ships no setsid command; this fills the gap. The session file lets
other processes find the detached session later, for example to signal the
whole session at once:

  gosetsid /tmp/build.sid make -j4 all
  gosetsid status /tmp/build.sid
  gosetsid kill /tmp/build.sid --signal INT`,
	Version: version.Version,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Past argument validation, errors are operational, not usage.
		cmd.SilenceUsage = true
		return detach.Detach(detach.Options{
			SessionFile: args[0],
			Command:     args[1],
			Args:        args[2:],
			Logger:      logger,
		})
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default /etc/gosetsid/config.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	// Flags after the target command belong to the target command.
	rootCmd.Flags().SetInterspersed(false)
}

// initConfig loads the config file and applies log settings. Neither is
// allowed to stop a detach: bad config degrades to defaults with a warning.
func initConfig() {
	if cfgFile != "" {
		cfgManager.SetConfigFile(cfgFile)
	}
	if err := cfgManager.LoadConfig(); err != nil {
		logger.WithError(err).Warn("failed to load config, using defaults")
	}
	if err := cfgManager.SetupLogger(logger, logLevel); err != nil {
		logger.WithError(err).Warn("failed to apply log settings")
	}
}
