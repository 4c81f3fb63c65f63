package reachability

import (
	"github.com/zeck-xyz/go-zeck/rules"
	"github.com/zeck-xyz/go-zeck/state"
)

// Builder explores every position reachable from a starting position.
type Builder struct {
	initial   state.State
	maxStates int
}

// NewBuilder creates a builder for the given starting position.
func NewBuilder(initial state.State) *Builder {
	return &Builder{
		initial:   initial.Copy(),
		maxStates: 1 << 20,
	}
}

// WithMaxStates caps exploration. The game graph is finite (every rule
// shrinks the unit count or raises the maximum occupied index), so the cap
// is a guard against misuse rather than a working limit.
func (b *Builder) WithMaxStates(max int) *Builder {
	b.maxStates = max
	return b
}

// Result contains the built graph and its summary statistics.
type Result struct {
	Graph     *Graph
	NodeCount int
	EdgeCount int
	Terminals int
	MaxDepth  int
	Truncated bool
}

// Build constructs the reachability graph using BFS. Terminal positions
// become nodes with no outgoing edges and are never expanded; the rule
// engine would return nothing for them anyway, but the terminal test is
// the explicit stop condition.
func (b *Builder) Build() *Result {
	graph := NewGraph(b.initial)
	root := graph.AddNode(b.initial)

	queue := []*Node{root}
	truncated := false

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.IsTerminal {
			continue
		}

		for _, f := range rules.Successors(cur.Counts) {
			next := graph.GetNode(f.To)
			if next == nil {
				if graph.NodeCount() >= b.maxStates {
					truncated = true
					continue
				}
				next = graph.AddNode(f.To)
				if !next.IsTerminal {
					queue = append(queue, next)
				}
			}
			graph.AddEdge(cur, next, f.Rule)
		}
	}

	return &Result{
		Graph:     graph,
		NodeCount: graph.NodeCount(),
		EdgeCount: graph.EdgeCount(),
		Terminals: len(graph.TerminalNodes()),
		MaxDepth:  graph.MaxDepth(),
		Truncated: truncated,
	}
}
