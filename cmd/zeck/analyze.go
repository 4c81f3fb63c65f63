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

func analyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	from := fs.Int("from", 0, "First pile size of a range")
	to := fs.Int("to", 0, "Last pile size of a range")
	verify := fs.Bool("verify", true, "Check acyclicity and value conservation")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: zeck analyze <n> [options]
       zeck analyze --from <a> --to <b> [options]

Build the reachability graph and strategy table, print state-space
statistics, and verify the structural invariants.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	lo, hi := *from, *to
	if lo == 0 && hi == 0 {
		if fs.NArg() < 1 {
			fs.Usage()
			return fmt.Errorf("pile size (or --from/--to range) required")
		}
		n, err := parsePile(fs.Arg(0), "analyze")
		if err != nil {
			return err
		}
		lo, hi = n, n
	}
	if lo < 1 || hi < lo {
		return fmt.Errorf("invalid range %d..%d", lo, hi)
	}

	seq := fibseq.New()
	fmt.Printf("%6s %8s %8s %6s %6s %8s  %s\n",
		"n", "states", "moves", "finals", "depth", "losing", "first mover")

	for n := lo; n <= hi; n++ {
		result := reachability.NewBuilder(state.Initial(n)).Build()
		if result.Truncated {
			return fmt.Errorf("n=%d: state space exceeds the exploration cap", n)
		}
		graph := result.Graph
		table := strategy.Solve(graph)

		if *verify {
			if err := reachability.CheckAcyclic(graph); err != nil {
				return fmt.Errorf("n=%d: %w", n, err)
			}
			if err := reachability.CheckValueInvariant(graph, seq); err != nil {
				return fmt.Errorf("n=%d: %w", n, err)
			}
		}

		_, losing := table.Counts()
		verdict := "wins"
		if table.IsLosing(state.Initial(n)) {
			verdict = "loses"
		}
		fmt.Printf("%6d %8d %8d %6d %6d %8d  %s\n",
			n, result.NodeCount, result.EdgeCount, result.Terminals,
			result.MaxDepth, losing, verdict)
	}

	if *verify {
		fmt.Println("\ninvariants verified: acyclic, value conserved on every move")
	}
	return nil
}
