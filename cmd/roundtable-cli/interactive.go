package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundtable/core"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Schedule from guided stdin prompts",
	Long:  "interactive prompts for participants, tables, rounds, then same-once pairs, then never-together pairs — one line at a time, writing prompts to stderr so stdout stays clean JSON — mirroring original_source/python/main.py's parse_interactive.",
	RunE:  runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)

	participants, tables, rounds := promptDimensions(scanner)
	samePairs := promptPairs(scanner, "same-once")
	neverPairs := promptPairs(scanner, "never-together")

	req := core.Request{
		Participants:       participants,
		Tables:             tables,
		Rounds:             rounds,
		SameOncePairs:      samePairs,
		NeverTogetherPairs: neverPairs,
	}
	runSchedule(req)
	return nil
}

// promptDimensions reads "participants tables rounds" as three
// whitespace-separated integers on one line, reprompting on malformed
// input.
func promptDimensions(scanner *bufio.Scanner) (participants, tables, rounds int) {
	prompt("Enter 'participants tables rounds':")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 3 {
			a, errA := strconv.Atoi(fields[0])
			b, errB := strconv.Atoi(fields[1])
			c, errC := strconv.Atoi(fields[2])
			if errA == nil && errB == nil && errC == nil {
				return a, b, c
			}
		}
		prompt("Invalid. Please enter three integers: participants tables rounds")
	}
	return 0, 0, 0
}

// promptPairs reads a count line, then that many "u v" pair lines,
// reprompting each malformed line individually.
func promptPairs(scanner *bufio.Scanner, label string) []core.RawPair {
	count := promptInt(scanner, fmt.Sprintf("Enter the number of %s pairs:", label))
	if count <= 0 {
		return nil
	}

	pairs := make([]core.RawPair, 0, count)
	prompt(fmt.Sprintf("Enter %d lines of 'u v' pairs for %s:", count, label))
	for len(pairs) < count && scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 {
			u, errU := strconv.Atoi(fields[0])
			v, errV := strconv.Atoi(fields[1])
			if errU == nil && errV == nil {
				pairs = append(pairs, core.RawPair{U: u, V: v})
				continue
			}
		}
		prompt("Invalid. Enter two integers: u v")
	}
	return pairs
}

func promptInt(scanner *bufio.Scanner, message string) int {
	prompt(message)
	for scanner.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil {
			return n
		}
		prompt("Invalid. Please enter an integer.")
	}
	return 0
}

func prompt(message string) {
	fmt.Fprintln(os.Stderr, message)
}
