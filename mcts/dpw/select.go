package dpw

import (
	"fmt"

	"github.com/sw965/mdplan"
	"github.com/sw965/mdplan/ucb"
)

// selectAction implements the DPW selection rule over the currently
// widened action children: any unvisited child (n == 0) is picked
// outright, first by insertion order; otherwise the child maximizing
// ucb.Score wins, ties broken by insertion order. node.Actions is used for
// iteration rather than ranging over the Children map, since map order is
// not stable and selection must be deterministic.
func selectAction[S comparable, A comparable](node *StateNode[S, A], c float64) (A, error) {
	var zero A

	if len(node.Actions) == 0 {
		return zero, fmt.Errorf("%w: state node has no widened actions", mdplan.ErrModelContractViolation)
	}

	for _, a := range node.Actions {
		if node.Children[a].N == 0 {
			return a, nil
		}
	}

	best := node.Actions[0]
	bestChild := node.Children[best]
	bestScore, err := ucb.Score(bestChild.Q, c, node.TotalN, bestChild.N)
	if err != nil {
		return zero, err
	}

	for _, a := range node.Actions[1:] {
		child := node.Children[a]
		score, err := ucb.Score(child.Q, c, node.TotalN, child.N)
		if err != nil {
			return zero, err
		}
		if score > bestScore {
			best = a
			bestScore = score
		}
	}

	return best, nil
}

// bestAction picks the arg-max action by q for the final decision, ties
// broken by insertion order.
func bestAction[S comparable, A comparable](node *StateNode[S, A]) A {
	best := node.Actions[0]
	bestQ := node.Children[best].Q
	for _, a := range node.Actions[1:] {
		q := node.Children[a].Q
		if q > bestQ {
			best = a
			bestQ = q
		}
	}
	return best
}
