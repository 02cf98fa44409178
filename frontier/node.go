package frontier

import (
	"github.com/katalvlaran/mazepath/gridgraph"
)

// NoParent is the Parent index of the start node.
const NoParent = -1

// Node links a visited cell to the node that discovered it.
// The start node has Parent == NoParent and Action == gridgraph.NoAction.
type Node struct {
	State  gridgraph.Coordinate
	Parent int
	Action gridgraph.Action
}

// Arena owns all nodes created during one search. Nodes are appended once
// and never modified; callers refer to them by index.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena with room for capacity nodes.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{nodes: make([]Node, 0, capacity)}
}

// New appends a node and returns its index.
func (a *Arena) New(state gridgraph.Coordinate, parent int, action gridgraph.Action) int {
	a.nodes = append(a.nodes, Node{State: state, Parent: parent, Action: action})
	return len(a.nodes) - 1
}

// Node returns a copy of the node at index i.
func (a *Arena) Node(i int) Node {
	return a.nodes[i]
}

// Len reports how many nodes have been created.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Depth counts parent links from node i back to the root.
// Complexity: O(depth).
func (a *Arena) Depth(i int) int {
	d := 0
	for n := a.nodes[i]; n.Parent != NoParent; n = a.nodes[n.Parent] {
		d++
	}
	return d
}

// Path walks the parent chain from node i and returns the actions and cells
// in start→goal order. The root's own cell is excluded, so both slices have
// length Depth(i) and actions[k] is the move that reaches cells[k].
// Complexity: O(depth).
func (a *Arena) Path(i int) ([]gridgraph.Action, []gridgraph.Coordinate) {
	var (
		actions []gridgraph.Action
		cells   []gridgraph.Coordinate
	)
	for n := a.nodes[i]; n.Parent != NoParent; n = a.nodes[n.Parent] {
		actions = append(actions, n.Action)
		cells = append(cells, n.State)
	}
	// reverse to get start → goal
	for l, r := 0, len(cells)-1; l < r; l, r = l+1, r-1 {
		actions[l], actions[r] = actions[r], actions[l]
		cells[l], cells[r] = cells[r], cells[l]
	}
	return actions, cells
}
