// Package reachability builds the graph of every position reachable from a
// starting pile, and verifies the structural properties the solver depends
// on: acyclicity and value conservation across every move.
package reachability

import (
	"github.com/zeck-xyz/go-zeck/state"
)

// Node is one reachable position.
type Node struct {
	ID           int
	Counts       state.State
	Key          string
	Successors   []*Edge // Outgoing moves
	Predecessors []*Edge // Incoming moves
	IsInitial    bool
	IsTerminal   bool
	Depth        int // Distance from the initial position
}

// Edge is one move: a rule firing from one position to another. Two edges
// may join the same pair of nodes; they are distinct moves.
type Edge struct {
	From *Node
	To   *Node
	Rule string
}

// Graph is the full reachability graph from an initial position.
type Graph struct {
	Initial state.State
	Nodes   map[string]*Node
	Edges   []*Edge
	Root    *Node

	nodeList []*Node // Discovery order, for deterministic iteration
}

// NewGraph creates an empty graph rooted at the given position.
func NewGraph(initial state.State) *Graph {
	return &Graph{
		Initial: initial.Copy(),
		Nodes:   make(map[string]*Node),
		Edges:   make([]*Edge, 0),
	}
}

// AddNode records a position, returning the existing node if the position
// is already known.
func (g *Graph) AddNode(s state.State) *Node {
	key := s.Key()
	if existing, ok := g.Nodes[key]; ok {
		return existing
	}

	node := &Node{
		ID:         len(g.Nodes),
		Counts:     s.Copy(),
		Key:        key,
		IsInitial:  len(g.Nodes) == 0,
		IsTerminal: s.IsTerminal(),
		Depth:      -1,
	}
	g.Nodes[key] = node
	g.nodeList = append(g.nodeList, node)

	if node.IsInitial {
		g.Root = node
		node.Depth = 0
	}
	return node
}

// AddEdge records a move between two known positions.
func (g *Graph) AddEdge(from, to *Node, rule string) *Edge {
	edge := &Edge{From: from, To: to, Rule: rule}
	from.Successors = append(from.Successors, edge)
	to.Predecessors = append(to.Predecessors, edge)
	g.Edges = append(g.Edges, edge)

	if from.Depth >= 0 && (to.Depth < 0 || to.Depth > from.Depth+1) {
		to.Depth = from.Depth + 1
	}
	return edge
}

// GetNode retrieves the node holding a position, or nil.
func (g *Graph) GetNode(s state.State) *Node {
	return g.Nodes[s.Key()]
}

// NodeCount returns the number of positions.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of moves.
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}

// NodeList returns all nodes in discovery order.
func (g *Graph) NodeList() []*Node {
	return g.nodeList
}

// TerminalNodes returns every position with no moves.
func (g *Graph) TerminalNodes() []*Node {
	var out []*Node
	for _, n := range g.nodeList {
		if n.IsTerminal {
			out = append(out, n)
		}
	}
	return out
}

// MaxDepth returns the longest shortest-path distance from the root.
func (g *Graph) MaxDepth() int {
	max := 0
	for _, n := range g.nodeList {
		if n.Depth > max {
			max = n.Depth
		}
	}
	return max
}
