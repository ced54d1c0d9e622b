package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gosetsid/internal/version"
)

// versionCmd prints build version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
