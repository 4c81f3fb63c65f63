package storage

// MatchRecorder adapts a Store to the game session's recorder interface,
// creating the match row on Start and numbering moves as they come in.
type MatchRecorder struct {
	store   *Store
	matchID string
	seq     int
}

// NewMatchRecorder creates a recorder writing to the given store.
func NewMatchRecorder(store *Store) *MatchRecorder {
	return &MatchRecorder{store: store}
}

// MatchID returns the id of the recorded match, empty before Start.
func (r *MatchRecorder) MatchID() string {
	return r.matchID
}

// Start creates the match row.
func (r *MatchRecorder) Start(n int, firstMoverLoses bool) error {
	id, err := r.store.CreateMatch(n, firstMoverLoses)
	if err != nil {
		return err
	}
	r.matchID = id
	r.seq = 0
	return nil
}

// Move appends a move to the match.
func (r *MatchRecorder) Move(mover, position string) error {
	r.seq++
	return r.store.LogMove(r.matchID, r.seq, mover, position)
}

// Finish closes out the match with its winner.
func (r *MatchRecorder) Finish(winner string) error {
	return r.store.FinishMatch(r.matchID, winner)
}
