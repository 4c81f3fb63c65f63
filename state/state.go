// Package state implements the count-vector encoding of game positions.
// A position holds, for each base-sequence index, the number of units of
// that value in the pile. The codec converts between raw pile sizes, move
// text, and positions; the terminal test recognizes Zeckendorf canonical
// form.
package state

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/zeck-xyz/go-zeck/fibseq"
)

// State is the multiplicity of each base-sequence value, indexed by
// sequence position. States are treated as immutable: every transformation
// copies first. Length is significant; the codec and the rule engine never
// produce trailing zeros, so two equal positions always have equal length.
type State []int

// Initial returns the starting position for a pile of n units: n copies of
// the smallest base value. The Zeckendorf decomposition of n is not the
// start of the game, it is where play ends up.
func Initial(n int) State {
	return State{n}
}

// Get returns the count at index i, zero past either end.
func (s State) Get(i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// Copy returns a fresh copy of the state.
func (s State) Copy() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Equals reports element-wise equality, length included.
func (s State) Equals(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i, c := range s {
		if other[i] != c {
			return false
		}
	}
	return true
}

// Total returns the number of units in the pile.
func (s State) Total() int {
	sum := 0
	for _, c := range s {
		sum += c
	}
	return sum
}

// MaxIndex returns the highest index holding a unit, or -1 for an empty
// position.
func (s State) MaxIndex() int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] > 0 {
			return i
		}
	}
	return -1
}

// Key returns a deterministic short hash usable as a map key. Distinct
// lengths hash differently, matching Equals.
func (s State) Key() string {
	h := sha256.New()
	buf := make([]byte, 8)
	for _, c := range s {
		binary.BigEndian.PutUint64(buf, uint64(c))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// IsTerminal reports whether the position is in Zeckendorf canonical form:
// no count above one and no two adjacent non-zero counts. Every rewrite
// rule needs a count of two somewhere or an adjacent non-zero pair, so
// terminal positions admit no moves.
func (s State) IsTerminal() bool {
	last := 0
	for _, c := range s {
		if c > 1 || (c > 0 && last > 0) {
			return false
		}
		last = c
	}
	return true
}

// Value returns the weighted sum of base values held by the position. The
// rewrite rules preserve this quantity; it is the pile size the position
// encodes.
func (s State) Value(seq *fibseq.Sequence) *uint256.Int {
	total := new(uint256.Int)
	var term uint256.Int
	for i, c := range s {
		if c == 0 {
			continue
		}
		term.Mul(seq.Value(i), uint256.NewInt(uint64(c)))
		total.Add(total, &term)
	}
	return total
}
