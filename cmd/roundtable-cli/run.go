package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundtable/core"
)

var runFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Schedule from a single JSON request read from stdin (or --file)",
	Long:  "run reads one JSON document matching the request shape from stdin (or --file), schedules it, and writes the response as compact JSON to stdout — the batch half of this command's dual stdin modes (see also 'interactive').",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "read the request JSON from this file instead of stdin")
}

func runRun(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	if runFile != "" {
		data, err = os.ReadFile(runFile)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("roundtable-cli: reading request: %w", err)
	}

	var req core.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("roundtable-cli: parsing request JSON: %w", err)
	}

	runSchedule(req)
	return nil
}
