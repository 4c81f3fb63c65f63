// Package game runs an interactive match between a human and the solver.
// The session owns a solved graph for its starting pile; the human picks
// moves from a lettered menu (or spells out the target position as base
// values) and the computer replies uniformly at random among its recorded
// winning replies, surrendering when it has none.
package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/zeck-xyz/go-zeck/fibseq"
	"github.com/zeck-xyz/go-zeck/reachability"
	"github.com/zeck-xyz/go-zeck/state"
	"github.com/zeck-xyz/go-zeck/strategy"
)

// Mover names used for recording and result reporting.
const (
	MoverHuman    = "human"
	MoverComputer = "computer"
)

// maxStates caps graph exploration for a session; a pile that does not fit
// cannot be solved, so New refuses it rather than play from a truncated
// table.
var maxStates = 1 << 20

// Recorder receives the events of a session as they happen. A returned
// error aborts the session.
type Recorder interface {
	Start(n int, firstMoverLoses bool) error
	Move(mover, position string) error
	Finish(winner string) error
}

// Options configures a session. Zero values select stdin, stdout, a
// time-based random seed, and no recording.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Seed     int64
	Recorder Recorder
}

// Session is one match: the solved graph for a starting pile plus the
// position currently on the table.
type Session struct {
	N int

	seq   *fibseq.Sequence
	graph *reachability.Graph
	table *strategy.Table
	cur   *reachability.Node
	rng   *rand.Rand
	in    *bufio.Scanner
	out   io.Writer
	rec   Recorder
}

// New builds and solves the graph for a pile of n units and prepares a
// session at the starting position. Non-positive n is rejected here, at
// the boundary; the core packages assume it never reaches them.
func New(n int, opts Options) (*Session, error) {
	if n < 1 {
		return nil, fmt.Errorf("starting pile must be a positive integer, got %d", n)
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	result := reachability.NewBuilder(state.Initial(n)).WithMaxStates(maxStates).Build()
	if result.Truncated {
		return nil, fmt.Errorf("state space for a pile of %d exceeds %d positions", n, maxStates)
	}
	graph := result.Graph
	return &Session{
		N:     n,
		seq:   fibseq.New(),
		graph: graph,
		table: strategy.Solve(graph),
		cur:   graph.Root,
		rng:   rand.New(rand.NewSource(seed)),
		in:    bufio.NewScanner(opts.In),
		out:   opts.Out,
		rec:   opts.Recorder,
	}, nil
}

// Current returns the position on the table.
func (s *Session) Current() state.State {
	return s.cur.Counts.Copy()
}

// Graph returns the session's reachability graph.
func (s *Session) Graph() *reachability.Graph {
	return s.graph
}

// Table returns the session's solved strategy table.
func (s *Session) Table() *strategy.Table {
	return s.table
}

// Play runs the match until someone cannot move. The human moves first.
func (s *Session) Play() error {
	doomed := s.table.IsLosing(s.cur.Counts)
	if s.rec != nil {
		if err := s.rec.Start(s.N, doomed); err != nil {
			return err
		}
	}
	if doomed && !s.cur.IsTerminal {
		fmt.Fprintln(s.out, "heads up, you're gonna lose!")
		fmt.Fprintln(s.out)
	}

	for {
		if s.cur.IsTerminal {
			fmt.Fprintln(s.out, "ha! i win!")
			return s.finish(MoverComputer)
		}

		fmt.Fprintf(s.out, "current state: %s\n", s.cur.Counts.Render(s.seq))

		move, err := s.humanMove()
		if err != nil {
			return err
		}
		s.cur = move
		if err := s.record(MoverHuman); err != nil {
			return err
		}

		replies := s.table.RepliesFor(s.cur.Counts)
		if len(replies) == 0 {
			fmt.Fprintln(s.out, "i surrender!")
			return s.finish(MoverHuman)
		}

		s.cur = replies[s.rng.Intn(len(replies))]
		if err := s.record(MoverComputer); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "i respond: %s\n", s.cur.Counts.Render(s.seq))
		fmt.Fprintln(s.out)
	}
}

// humanMove selects the human's move: a single legal move is taken
// automatically, otherwise the menu is shown and input read until it names
// a legal move.
func (s *Session) humanMove() (*reachability.Node, error) {
	moves := s.cur.Successors
	if len(moves) == 1 {
		only := moves[0].To
		fmt.Fprintf(s.out, "your only move is: %s\n", only.Counts.Render(s.seq))
		return only, nil
	}

	fmt.Fprintln(s.out, "your available moves:")
	keys := make([]string, len(moves))
	for i, e := range moves {
		keys[i] = moveKey(i)
		fmt.Fprintf(s.out, "  [%s]: %s\n", keys[i], e.To.Counts.Render(s.seq))
	}

	for {
		fmt.Fprintf(s.out, "your turn [%s]: ", strings.Join(keys, "/"))
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("input closed before the game ended")
		}
		move, err := s.ParseMove(s.in.Text())
		if err != nil {
			fmt.Fprintln(s.out, "  invalid move, try again!")
			continue
		}
		fmt.Fprintf(s.out, "you chose: %s\n", move.Counts.Render(s.seq))
		return move, nil
	}
}

// ParseMove interprets player input as either a menu key or the target
// position spelled out as base values (e.g. "3 1"). Anything else is an
// invalid move, reported with state.ErrInvalidMove, never a crash.
func (s *Session) ParseMove(text string) (*reachability.Node, error) {
	text = strings.TrimSpace(text)
	moves := s.cur.Successors

	for i, e := range moves {
		if text == moveKey(i) {
			return e.To, nil
		}
	}

	target, err := state.Parse(s.seq, text)
	if err != nil {
		return nil, err
	}
	for _, e := range moves {
		if e.To.Counts.Equals(target) {
			return e.To, nil
		}
	}
	return nil, fmt.Errorf("%w: %s is not reachable from here",
		state.ErrInvalidMove, target.Render(s.seq))
}

func (s *Session) record(mover string) error {
	if s.rec == nil {
		return nil
	}
	return s.rec.Move(mover, s.cur.Counts.Render(s.seq))
}

func (s *Session) finish(winner string) error {
	if s.rec == nil {
		return nil
	}
	return s.rec.Finish(winner)
}

// moveKey labels menu entries a..z, then aa, ab, and so on.
func moveKey(i int) string {
	key := ""
	for {
		key = string(rune('a'+i%26)) + key
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return key
}
