package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/zeck-xyz/go-zeck/fibseq"
)

// ErrInvalidMove reports move text that names a value outside the base
// sequence or a token that is not a positive integer. It is an expected
// outcome of parsing human input, not a failure of the core.
var ErrInvalidMove = errors.New("invalid move")

// Parse converts move text, a whitespace-separated list of base values,
// into a position. The whole parse fails on the first bad token; no
// partial state is returned.
func Parse(seq *fibseq.Sequence, text string) (State, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty move", ErrInvalidMove)
	}

	var s State
	for _, tok := range fields {
		v, err := uint256.FromDecimal(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidMove, tok)
		}
		i := seq.IndexOf(v)
		if i == fibseq.NotFound {
			return nil, fmt.Errorf("%w: %s is not a base value", ErrInvalidMove, tok)
		}
		for i >= len(s) {
			s = append(s, 0)
		}
		s[i]++
	}
	return s, nil
}

// Render expands the position into its multiset of base values in
// increasing order, one decimal value per unit.
func (s State) Render(seq *fibseq.Sequence) string {
	var parts []string
	for i, c := range s {
		if c == 0 {
			continue
		}
		v := seq.Value(i).Dec()
		for ; c > 0; c-- {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
