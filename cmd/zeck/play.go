package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeck-xyz/go-zeck/game"
	"github.com/zeck-xyz/go-zeck/storage"
)

func play(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	dbPath := fs.String("db", "", "Record the match in this SQLite database")
	seed := fs.Int64("seed", 0, "Random seed for the computer's replies (0 = time-based)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: zeck play <n> [options]

Play an interactive match starting from a pile of n units. You move
first; pick moves by menu letter or by spelling out the target position
as base values (e.g. "3 1").

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
	n, err := parsePile(fs.Arg(0), "play")
	if err != nil {
		return err
	}

	opts := game.Options{Seed: *seed}
	if *dbPath != "" {
		store, err := storage.Open(*dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		rec := storage.NewMatchRecorder(store)
		opts.Recorder = rec
		defer func() {
			if rec.MatchID() != "" {
				fmt.Printf("match recorded as %s\n", rec.MatchID())
			}
		}()
	}

	fmt.Printf("starting a game with n=%d\n\n", n)
	session, err := game.New(n, opts)
	if err != nil {
		return err
	}
	return session.Play()
}
