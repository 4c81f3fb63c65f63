package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeck-xyz/go-zeck/fibseq"
	"github.com/zeck-xyz/go-zeck/reachability"
	"github.com/zeck-xyz/go-zeck/state"
	"github.com/zeck-xyz/go-zeck/strategy"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	showReplies := fs.Bool("replies", false, "List the winning opening moves")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: zeck solve <n> [options]

Classify the starting position for a pile of n units: does the first
mover win with perfect play?

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("pile size required")
	}
	n, err := parsePile(fs.Arg(0), "solve")
	if err != nil {
		return err
	}

	seq := fibseq.New()
	start := state.Initial(n)
	result := reachability.NewBuilder(start).Build()
	if result.Truncated {
		return fmt.Errorf("n=%d: state space exceeds the exploration cap, refusing to classify a truncated graph", n)
	}
	graph := result.Graph
	table := strategy.Solve(graph)

	switch {
	case graph.Root.IsTerminal:
		fmt.Printf("n=%d: the starting pile is already in canonical form; the first mover loses\n", n)
	case table.IsLosing(start):
		fmt.Printf("n=%d: the first mover loses with perfect play\n", n)
	default:
		replies := table.RepliesFor(start)
		fmt.Printf("n=%d: the first mover wins (%d winning opening move(s))\n", n, len(replies))
		if *showReplies {
			for _, r := range replies {
				fmt.Printf("  -> %s\n", r.Counts.Render(seq))
			}
		}
	}
	return nil
}
