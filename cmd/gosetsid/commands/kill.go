package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gosetsid/internal/proc"
	"gosetsid/internal/session"
)

var killSignal string

// killCmd signals the whole process group of a recorded session
var killCmd = &cobra.Command{
	Use:   "kill <session-file>",
	Short: "Signal every process in a recorded session",
	Long: `kill reads the session id from a session file written by gosetsid and
delivers a signal to the session's entire process group.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		name := killSignal
		if name == "" {
			name = cfgManager.GetConfig().KillSignal
		}
		sig, err := proc.ParseSignal(name)
		if err != nil {
			return err
		}

		sid, err := session.Read(args[0])
		if err != nil {
			return err
		}

		if err := proc.New(logger).SignalSession(sid, sig); err != nil {
			return err
		}

		fmt.Printf("sent %s to session %d\n", name, sid)
		return nil
	},
}

func init() {
	killCmd.Flags().StringVarP(&killSignal, "signal", "s", "", "signal to send (default from config, then TERM)")
	rootCmd.AddCommand(killCmd)
}
