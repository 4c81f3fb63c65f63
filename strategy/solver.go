// Package strategy classifies every position of a reachability graph by
// backward induction and records, for each, the replies that leave the
// opponent in a losing position.
package strategy

import (
	"github.com/zeck-xyz/go-zeck/reachability"
	"github.com/zeck-xyz/go-zeck/state"
)

// Table holds the computed winning replies for every reachable position.
// An empty reply list at a position with moves means every move hands the
// opponent a win; a terminal position is losing for its mover outright.
type Table struct {
	graph   *reachability.Graph
	replies map[string][]*reachability.Node
}

// Solve computes the table for a graph. Positions are processed in reverse
// topological order, every position after all of its successors, obtained
// from an iterative depth-first post-order walk of the DAG. A position's
// replies are exactly the successors whose own reply list is empty; a
// successor reached by more than one firing appears once per firing, so a
// random pick over the list weights each move, not each position.
func Solve(g *reachability.Graph) *Table {
	replies := make(map[string][]*reachability.Node, g.NodeCount())

	for _, node := range postOrder(g) {
		var winning []*reachability.Node
		for _, e := range node.Successors {
			if len(replies[e.To.Key]) == 0 {
				winning = append(winning, e.To)
			}
		}
		replies[node.Key] = winning
	}

	return &Table{graph: g, replies: replies}
}

// RepliesFor returns the winning replies recorded for a position. The list
// is empty for losing and terminal positions, and nil for positions outside
// the graph.
func (t *Table) RepliesFor(s state.State) []*reachability.Node {
	return t.replies[s.Key()]
}

// Has reports whether the position was part of the solved graph.
func (t *Table) Has(s state.State) bool {
	_, ok := t.replies[s.Key()]
	return ok
}

// IsLosing reports whether the mover at the position loses against perfect
// play. Terminal positions are losing: the mover cannot move.
func (t *Table) IsLosing(s state.State) bool {
	return len(t.replies[s.Key()]) == 0
}

// Counts returns how many solved positions are winning and losing for
// their mover.
func (t *Table) Counts() (winning, losing int) {
	for _, r := range t.replies {
		if len(r) > 0 {
			winning++
		} else {
			losing++
		}
	}
	return
}

// postOrder returns the graph's nodes in depth-first post order: every
// node appears after everything reachable from it. Successor order drives
// the walk, so the result is deterministic.
func postOrder(g *reachability.Graph) []*reachability.Node {
	if g.Root == nil {
		return nil
	}

	type frame struct {
		node *reachability.Node
		next int
	}
	order := make([]*reachability.Node, 0, g.NodeCount())
	visited := map[string]bool{g.Root.Key: true}
	stack := []frame{{node: g.Root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.Successors) {
			child := top.node.Successors[top.next].To
			top.next++
			if !visited[child.Key] {
				visited[child.Key] = true
				stack = append(stack, frame{node: child})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order
}
