// Package fibseq provides the base value sequence underlying the game's
// number encoding: 1, 2, and every later value the sum of its two
// predecessors. The sequence is strictly increasing, so membership of any
// integer can be decided by extending the cache until its frontier passes
// the candidate.
package fibseq

import (
	"sync"

	"github.com/holiman/uint256"
)

// NotFound is returned by IndexOf for values that never occur in the sequence.
const NotFound = -1

// Sequence is a lazily extended cache of the base sequence, together with
// the inverse value-to-index lookup. The cache is append-only and safe for
// concurrent use.
//
// Values are 256-bit integers: uint64 overflows near index 91, and IndexOf
// must be able to prove non-membership for arbitrary user-typed integers.
// The sequence itself outgrows 256 bits at index 369; extension stops at
// that frontier, and anything above the last cached value is a non-member
// among representable integers.
type Sequence struct {
	mu     sync.RWMutex
	values []*uint256.Int
	index  map[uint256.Int]int
	capped bool // the next value would exceed 2^256-1
}

// New creates a sequence seeded with 1 and 2.
func New() *Sequence {
	s := &Sequence{
		values: []*uint256.Int{uint256.NewInt(1), uint256.NewInt(2)},
		index:  make(map[uint256.Int]int),
	}
	for i, v := range s.values {
		s.index[*v] = i
	}
	return s
}

// Value returns the sequence value at index i, extending the cache as
// needed. The result is a copy and safe to mutate. Indices past the
// 256-bit frontier have no representable value and panic.
func (s *Sequence) Value(i int) *uint256.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extend(i)
	return new(uint256.Int).Set(s.values[i])
}

// IndexOf returns the index of v in the sequence, or NotFound if v never
// occurs. The cache is extended until its last value reaches or passes v,
// or until no further value is representable; strict monotonicity makes a
// miss at that point a proof of non-membership.
func (s *Sequence) IndexOf(v *uint256.Int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.capped && s.values[len(s.values)-1].Lt(v) {
		s.extend(len(s.values))
	}
	if i, ok := s.index[*v]; ok {
		return i
	}
	return NotFound
}

// Len returns the number of values cached so far.
func (s *Sequence) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// extend grows the cache until index i exists, stopping early if the next
// value would wrap past 2^256-1; a wrapped value must never enter the cache
// or the monotonicity argument behind IndexOf collapses. Caller holds mu.
func (s *Sequence) extend(i int) {
	for i >= len(s.values) && !s.capped {
		n := len(s.values)
		next, overflow := new(uint256.Int).AddOverflow(s.values[n-1], s.values[n-2])
		if overflow {
			s.capped = true
			return
		}
		s.values = append(s.values, next)
		s.index[*next] = n
	}
}
