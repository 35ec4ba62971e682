// Command dircmp compares two directory trees by content and reports how
// every file in one relates to the other.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-lima/dircmp/internal/logging"
)

var verbosity int

// rootCmd is the dircmp entry point; each subcommand (scan, print, copy)
// is registered onto it in its own file's init(), following the teacher's
// one-file-per-subcommand layout (cli/cmd_find.go, cli/cmd_report.go, ...).
var rootCmd = &cobra.Command{
	Use:           "dircmp",
	Short:         "Compare two directory trees by content",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity (repeatable)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
