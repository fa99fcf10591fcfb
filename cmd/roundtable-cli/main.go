// Command roundtable-cli is the cobra-driven terminal entry point (§9's
// ambient stack), in the idiom of jhkimqd-chaos-utils/cmd/chaos-runner:
// a root command carrying persistent flags, with the real work delegated
// to subcommands defined in their own files (run.go, interactive.go).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	verbose    bool
	cliVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "roundtable-cli",
	Short:   "Round-table seating scheduler",
	Long:    "roundtable-cli schedules participants across tables and rounds, honoring same-once and never-together pairings within a time budget.",
	Version: cliVersion,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted but has no effect on output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(interactiveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
