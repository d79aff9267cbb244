// Package mcts implements vanilla Monte Carlo Tree Search over finite,
// enumerable action spaces: one StateActionNode per legal action, created
// once at expansion time and never widened afterward.
package mcts

// StateActionNode is one legal action at a state: its visit count and
// running mean backed-up value.
type StateActionNode[A comparable] struct {
	Action A
	N      int
	Q      float64
}

// StateNode is a state's tree node: a fixed, index-ordered vector of
// StateActionNode built once when the state is first encountered. TotalN
// always equals the sum of the children's N.
type StateNode[A comparable] struct {
	TotalN   int
	Children []StateActionNode[A]
}
