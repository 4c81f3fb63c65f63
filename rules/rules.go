// Package rules enumerates the legal rewrites of a position. Each rule is
// a local rewrite that preserves the weighted value of the position while
// either shrinking the unit count or pushing units to higher indices, which
// is what makes the reachable state space a finite DAG.
package rules

import (
	"fmt"

	"github.com/zeck-xyz/go-zeck/state"
)

// Rule name prefixes, in firing priority order.
const (
	CarryUp          = "carry_up"
	ReSplit          = "re_split"
	MergeDuplicate   = "merge_dup"
	MergeConsecutive = "merge_adj"
)

// Firing is one legal move: the rule instance that fired and the position
// it produces.
type Firing struct {
	Rule string
	To   state.State
}

// Successors returns every firing from the position, in a fixed order:
// carry-up, re-split, then the merge rules by ascending index. Two firings
// may produce the same position; both are distinct moves and both are kept.
// Terminal positions yield nothing.
func Successors(s state.State) []Firing {
	var out []Firing

	// Carry-up: two units of the smallest value become one of the next
	// (1+1=2).
	if s.Get(0) >= 2 {
		n := grown(s, 1)
		n[0] -= 2
		n[1]++
		out = append(out, Firing{CarryUp, n})
	}

	// Re-split: two units at index 1 become one at index 0 and one at
	// index 2 (2+2=1+3).
	if s.Get(1) >= 2 {
		n := grown(s, 2)
		n[1] -= 2
		n[0]++
		n[2]++
		out = append(out, Firing{ReSplit, n})
	}

	// Merge-duplicate: for every i >= 2 holding a pair, trade it for one
	// unit two below and one above.
	for i := 2; i < len(s); i++ {
		if s[i] < 2 {
			continue
		}
		n := grown(s, i+1)
		n[i] -= 2
		n[i-2]++
		n[i+1]++
		out = append(out, Firing{fmt.Sprintf("%s_%d", MergeDuplicate, i), n})
	}

	// Merge-consecutive: any adjacent occupied pair collapses into one
	// unit of their sum.
	for i := 0; i+1 < len(s); i++ {
		if s[i] == 0 || s[i+1] == 0 {
			continue
		}
		n := grown(s, i+2)
		n[i]--
		n[i+1]--
		n[i+2]++
		out = append(out, Firing{fmt.Sprintf("%s_%d", MergeConsecutive, i), n})
	}

	return out
}

// grown copies s, extending the tail with zeros so that index max exists.
func grown(s state.State, max int) state.State {
	n := len(s)
	if max+1 > n {
		n = max + 1
	}
	out := make(state.State, n)
	copy(out, s)
	return out
}
