package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeck-xyz/go-zeck/storage"
)

func history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", "matches.db", "SQLite database of recorded matches")
	limit := fs.Int("limit", 20, "Number of matches to show")
	matchID := fs.String("id", "", "Show the moves of one match")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: zeck history [options]

Show recorded matches, or the full move list of one match.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if *matchID != "" {
		return showMatch(store, *matchID)
	}

	matches, err := store.ListMatches(*limit)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("no recorded matches")
		return nil
	}

	fmt.Printf("%-36s %6s %-10s %-8s %s\n", "id", "n", "winner", "doomed", "started")
	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "(unfinished)"
		}
		fmt.Printf("%-36s %6d %-10s %-8v %s\n",
			m.ID, m.N, winner, m.FirstMoverLoses, m.StartedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func showMatch(store *storage.Store, id string) error {
	m, err := store.GetMatch(id)
	if err != nil {
		return fmt.Errorf("match %s: %w", id, err)
	}
	moves, err := store.MovesFor(id)
	if err != nil {
		return err
	}

	fmt.Printf("match %s: n=%d", m.ID, m.N)
	if m.Winner != "" {
		fmt.Printf(", %s won", m.Winner)
	}
	fmt.Println()
	for _, mv := range moves {
		fmt.Printf("  %3d. %-8s -> %s\n", mv.Seq, mv.Mover, mv.Position)
	}
	return nil
}
