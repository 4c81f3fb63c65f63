package reachability

import (
	"fmt"

	"github.com/zeck-xyz/go-zeck/fibseq"
)

// CheckValueInvariant verifies that every move in the graph preserves the
// weighted value sum of the position. A violation means the rule engine is
// broken; the error names the offending move.
func CheckValueInvariant(g *Graph, seq *fibseq.Sequence) error {
	if g.Root == nil {
		return nil
	}
	want := g.Root.Counts.Value(seq)
	for _, e := range g.Edges {
		got := e.To.Counts.Value(seq)
		if !got.Eq(want) {
			return fmt.Errorf("move %s from %v: value %s, want %s",
				e.Rule, e.From.Counts, got.Dec(), want.Dec())
		}
	}
	return nil
}

// CheckAcyclic searches the graph for a back edge with a depth-first walk.
// The rule set guarantees acyclicity (the pair of unit count and negated
// maximum index strictly decreases on every move), so a cycle means the
// builder or the rules are broken.
func CheckAcyclic(g *Graph) error {
	if g.Root == nil {
		return nil
	}

	const (
		unseen = iota
		inStack
		done
	)
	color := make(map[string]int, len(g.Nodes))

	type frame struct {
		node *Node
		next int
	}
	stack := []frame{{node: g.Root}}
	color[g.Root.Key] = inStack

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.Successors) {
			child := top.node.Successors[top.next].To
			top.next++
			switch color[child.Key] {
			case unseen:
				color[child.Key] = inStack
				stack = append(stack, frame{node: child})
			case inStack:
				return fmt.Errorf("cycle through position %v", child.Counts)
			}
			continue
		}
		color[top.node.Key] = done
		stack = stack[:len(stack)-1]
	}
	return nil
}
