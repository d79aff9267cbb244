package mcts

import "github.com/sw965/mdplan/ucb"

// selectChild picks the child to descend into: any unvisited child
// (n == 0) is picked outright, first by index order; otherwise the child
// maximizing ucb.Score wins, ties broken by index order so that identical
// seeds and models always walk the same tree.
func selectChild[A comparable](node *StateNode[A], c float64) (int, error) {
	for i := range node.Children {
		if node.Children[i].N == 0 {
			return i, nil
		}
	}

	best := 0
	bestScore, err := ucb.Score(node.Children[0].Q, c, node.TotalN, node.Children[0].N)
	if err != nil {
		return 0, err
	}

	for i := 1; i < len(node.Children); i++ {
		child := &node.Children[i]
		score, err := ucb.Score(child.Q, c, node.TotalN, child.N)
		if err != nil {
			return 0, err
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	return best, nil
}

// bestChild picks the arg-max child by q for the final action decision,
// ties broken by index order.
func bestChild[A comparable](node *StateNode[A]) int {
	best := 0
	for i := 1; i < len(node.Children); i++ {
		if node.Children[i].Q > node.Children[best].Q {
			best = i
		}
	}
	return best
}
