package mcts

// Tree is the arena-backed state store: nodes are addressed by integer
// index into a dense slice, with a hash map from state to index for the
// hot-path lookup, rather than a pointer-chasing structure keyed directly
// on state values. The slice holds pointers, not values, so a held *StateNode
// stays valid across an Insert that grows and reallocates the slice
// (recursive simulate calls hold exactly such a pointer across nested
// expansions).
type Tree[S comparable, A comparable] struct {
	index map[S]int
	nodes []*StateNode[A]
}

func NewTree[S comparable, A comparable]() *Tree[S, A] {
	return &Tree[S, A]{index: map[S]int{}}
}

// Lookup returns the arena index for s, if s has been expanded.
func (t *Tree[S, A]) Lookup(s S) (int, bool) {
	i, ok := t.index[s]
	return i, ok
}

// Insert adds a freshly expanded node for s and returns its arena index.
func (t *Tree[S, A]) Insert(s S, node *StateNode[A]) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node)
	t.index[s] = idx
	return idx
}

// At returns the node at idx. The pointer remains valid regardless of later
// Insert calls.
func (t *Tree[S, A]) At(idx int) *StateNode[A] {
	return t.nodes[idx]
}

func (t *Tree[S, A]) Size() int {
	return len(t.nodes)
}

// Clear discards the whole tree, e.g. between independent Action calls when
// the caller's ResetCallback opts out of tree reuse.
func (t *Tree[S, A]) Clear() {
	t.index = map[S]int{}
	t.nodes = nil
}
