package storage

import (
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGetMatch(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateMatch(8, true)
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if id == "" {
		t.Fatal("empty match id")
	}

	m, err := store.GetMatch(id)
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if m.N != 8 || !m.FirstMoverLoses {
		t.Errorf("match = %+v", m)
	}
	if m.EndedAt != nil || m.Winner != "" {
		t.Errorf("fresh match already ended: %+v", m)
	}
}

func TestFinishMatch(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateMatch(4, true)
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if err := store.FinishMatch(id, "computer"); err != nil {
		t.Fatalf("FinishMatch: %v", err)
	}

	m, err := store.GetMatch(id)
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if m.Winner != "computer" {
		t.Errorf("winner = %q", m.Winner)
	}
	if m.EndedAt == nil {
		t.Error("ended_at not set")
	}
}

func TestMovesRoundTrip(t *testing.T) {
	store := newTestStore(t)

	id, _ := store.CreateMatch(4, true)
	steps := []struct{ mover, pos string }{
		{"human", "1 1 2"},
		{"computer", "1 3"},
	}
	for i, st := range steps {
		if err := store.LogMove(id, i+1, st.mover, st.pos); err != nil {
			t.Fatalf("LogMove %d: %v", i, err)
		}
	}

	moves, err := store.MovesFor(id)
	if err != nil {
		t.Fatalf("MovesFor: %v", err)
	}
	if len(moves) != len(steps) {
		t.Fatalf("got %d moves, want %d", len(moves), len(steps))
	}
	for i, m := range moves {
		if m.Seq != i+1 || m.Mover != steps[i].mover || m.Position != steps[i].pos {
			t.Errorf("move %d = %+v", i, m)
		}
	}
}

func TestListMatches(t *testing.T) {
	store := newTestStore(t)

	for n := 2; n <= 6; n++ {
		if _, err := store.CreateMatch(n, false); err != nil {
			t.Fatalf("CreateMatch(%d): %v", n, err)
		}
	}

	matches, err := store.ListMatches(3)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("got %d matches, want 3", len(matches))
	}
}

func TestMatchRecorder(t *testing.T) {
	store := newTestStore(t)
	rec := NewMatchRecorder(store)

	if err := rec.Start(4, true); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rec.MatchID() == "" {
		t.Fatal("recorder has no match id after Start")
	}
	if err := rec.Move("human", "1 1 2"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if err := rec.Move("computer", "1 3"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if err := rec.Finish("computer"); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	m, err := store.GetMatch(rec.MatchID())
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if m.Winner != "computer" || !m.FirstMoverLoses {
		t.Errorf("match = %+v", m)
	}

	moves, err := store.MovesFor(rec.MatchID())
	if err != nil {
		t.Fatalf("MovesFor: %v", err)
	}
	if len(moves) != 2 || moves[1].Position != "1 3" {
		t.Errorf("moves = %v", moves)
	}
}
