package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/zeck-xyz/go-zeck/state"
)

// fakeRecorder captures session events in memory.
type fakeRecorder struct {
	n      int
	doomed bool
	moves  []string
	winner string
}

func (r *fakeRecorder) Start(n int, firstMoverLoses bool) error {
	r.n = n
	r.doomed = firstMoverLoses
	return nil
}

func (r *fakeRecorder) Move(mover, position string) error {
	r.moves = append(r.moves, mover+":"+position)
	return nil
}

func (r *fakeRecorder) Finish(winner string) error {
	r.winner = winner
	return nil
}

func newTestSession(t *testing.T, n int, input string) (*Session, *strings.Builder, *fakeRecorder) {
	t.Helper()
	out := &strings.Builder{}
	rec := &fakeRecorder{}
	s, err := New(n, Options{
		In:       strings.NewReader(input),
		Out:      out,
		Seed:     1,
		Recorder: rec,
	})
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return s, out, rec
}

func TestRejectsNonPositivePile(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := New(n, Options{}); err == nil {
			t.Errorf("New(%d) accepted", n)
		}
	}
}

func TestRejectsTruncatedStateSpace(t *testing.T) {
	old := maxStates
	maxStates = 4
	defer func() { maxStates = old }()

	if _, err := New(30, Options{}); err == nil {
		t.Error("New accepted a pile whose graph was truncated by the state cap")
	}
}

func TestTerminalStartComputerWins(t *testing.T) {
	s, out, rec := newTestSession(t, 1, "")

	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !strings.Contains(out.String(), "ha! i win!") {
		t.Errorf("output missing win message:\n%s", out.String())
	}
	if rec.winner != MoverComputer {
		t.Errorf("winner = %q", rec.winner)
	}
	if len(rec.moves) != 0 {
		t.Errorf("recorded moves on a terminal start: %v", rec.moves)
	}
}

func TestPileOfTwoComputerSurrenders(t *testing.T) {
	// The only move from [2] reaches terminal [0 1]; the computer cannot
	// reply and surrenders. No input is needed: single moves are automatic.
	s, out, rec := newTestSession(t, 2, "")

	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	text := out.String()
	if strings.Contains(text, "gonna lose") {
		t.Error("warned the human despite a winning start")
	}
	if !strings.Contains(text, "your only move is: 2") {
		t.Errorf("missing forced-move line:\n%s", text)
	}
	if !strings.Contains(text, "i surrender!") {
		t.Errorf("missing surrender:\n%s", text)
	}
	if rec.winner != MoverHuman {
		t.Errorf("winner = %q", rec.winner)
	}
	if rec.doomed {
		t.Error("recorder marked a winning start as doomed")
	}
}

func TestPileOfFourComputerWins(t *testing.T) {
	// [4] is losing for the first mover: forced to [2 1], the computer
	// plays [1 0 1] and the human faces Zeckendorf form.
	s, out, rec := newTestSession(t, 4, "")

	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "heads up, you're gonna lose!") {
		t.Errorf("missing warning:\n%s", text)
	}
	if !strings.Contains(text, "i respond: 1 3") {
		t.Errorf("missing computer reply:\n%s", text)
	}
	if !strings.Contains(text, "ha! i win!") {
		t.Errorf("missing win message:\n%s", text)
	}
	if rec.winner != MoverComputer {
		t.Errorf("winner = %q", rec.winner)
	}
	want := []string{"human:1 1 2", "computer:1 3"}
	if len(rec.moves) != len(want) {
		t.Fatalf("recorded moves = %v", rec.moves)
	}
	for i, m := range want {
		if rec.moves[i] != m {
			t.Errorf("move %d = %q, want %q", i, rec.moves[i], m)
		}
	}
}

func TestMenuSelectionAndRetry(t *testing.T) {
	// Put the session at [2 2], which has three moves, and feed one bad
	// key before a good one. Choosing [3 0 1] leaves the computer with no
	// winning reply.
	s, out, rec := newTestSession(t, 6, "z\nb\n")
	s.cur = s.graph.GetNode(state.State{2, 2})
	if s.cur == nil {
		t.Fatal("[2 2] not reachable from [6]")
	}

	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "your available moves:") {
		t.Errorf("missing menu:\n%s", text)
	}
	if !strings.Contains(text, "invalid move, try again!") {
		t.Errorf("missing retry prompt:\n%s", text)
	}
	if !strings.Contains(text, "you chose: 1 1 1 3") {
		t.Errorf("missing choice echo:\n%s", text)
	}
	if !strings.Contains(text, "i surrender!") {
		t.Errorf("missing surrender:\n%s", text)
	}
	if rec.winner != MoverHuman {
		t.Errorf("winner = %q", rec.winner)
	}
}

func TestParseMove(t *testing.T) {
	s, _, _ := newTestSession(t, 6, "")
	s.cur = s.graph.GetNode(state.State{2, 2})

	// Successors of [2 2]: a=[0 3], b=[3 0 1], c=[1 1 1].
	move, err := s.ParseMove("a")
	if err != nil || !move.Counts.Equals(state.State{0, 3}) {
		t.Errorf("ParseMove(a) = %v, %v", move, err)
	}

	// The same move spelled out as its base values.
	move, err = s.ParseMove("2 2 2")
	if err != nil || !move.Counts.Equals(state.State{0, 3}) {
		t.Errorf("ParseMove(2 2 2) = %v, %v", move, err)
	}

	// A well-formed position that is not a legal move.
	if _, err := s.ParseMove("8"); !errors.Is(err, state.ErrInvalidMove) {
		t.Errorf("ParseMove(8) = %v, want ErrInvalidMove", err)
	}

	// A value outside the base sequence.
	if _, err := s.ParseMove("4"); !errors.Is(err, state.ErrInvalidMove) {
		t.Errorf("ParseMove(4) = %v, want ErrInvalidMove", err)
	}

	// Garbage.
	if _, err := s.ParseMove("what"); !errors.Is(err, state.ErrInvalidMove) {
		t.Errorf("ParseMove(what) = %v, want ErrInvalidMove", err)
	}
}

func TestInputClosedMidGame(t *testing.T) {
	s, _, _ := newTestSession(t, 6, "")
	s.cur = s.graph.GetNode(state.State{2, 2})

	if err := s.Play(); err == nil {
		t.Error("expected an error when input closes at a menu")
	}
}

func TestMoveKeys(t *testing.T) {
	cases := map[int]string{0: "a", 1: "b", 25: "z", 26: "aa", 27: "ab", 52: "ba"}
	for i, want := range cases {
		if got := moveKey(i); got != want {
			t.Errorf("moveKey(%d) = %q, want %q", i, got, want)
		}
	}
}
