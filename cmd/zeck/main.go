package main

import (
	"fmt"
	"os"
	"strconv"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "play":
		if err := play(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "analyze":
		if err := analyze(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "history":
		if err := history(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("zeck version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`zeck - the Zeckendorf rewriting game

A pile of n units is rewritten by local rules until it reaches Zeckendorf
canonical form; the player who cannot move loses.

Usage:
  zeck <command> [options]

Commands:
  play       Play an interactive match against the solver
  solve      Classify the starting position for a pile
  analyze    Reachability and strategy statistics for one or more piles
  history    Show recorded matches
  help       Show this help message
  version    Show version information

Examples:
  # Play a match with a pile of 12, recording it
  zeck play 12 --db matches.db

  # Who wins a pile of 40?
  zeck solve 40

  # State-space statistics for piles 1 through 30
  zeck analyze --from 1 --to 30

  # Recent recorded matches
  zeck history --db matches.db

For command-specific help, run:
  zeck <command> --help`)
}

// parsePile reads a pile size from a positional argument.
func parsePile(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s requires a pile size, got %q", name, arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("pile size must be a positive integer, got %d", n)
	}
	return n, nil
}
