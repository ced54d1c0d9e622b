package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gosetsid/internal/proc"
	"gosetsid/internal/session"
)

// exitSessionGone distinguishes "session is known and has exited" from
// operational failures (exit 1).
const exitSessionGone = 3

// statusCmd reports on the session recorded in a session file
var statusCmd = &cobra.Command{
	Use:   "status <session-file>",
	Short: "Report whether a recorded session is still alive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		sid, err := session.Read(args[0])
		if err != nil {
			return err
		}

		info, err := proc.New(logger).Inspect(sid)
		if err != nil {
			return fmt.Errorf("inspect session %d: %w", sid, err)
		}

		if !info.Alive {
			fmt.Printf("session %d: gone\n", sid)
			os.Exit(exitSessionGone)
		}

		fmt.Printf("session %d: alive\n", sid)
		if info.Name != "" {
			fmt.Printf("  leader: %s (pid %d)\n", info.Name, info.SID)
		}
		if !info.StartedAt.IsZero() {
			fmt.Printf("  started: %s\n", info.StartedAt.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
