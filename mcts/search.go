package mcts

import (
	"fmt"
	"math"

	"github.com/sw965/mdplan"
	"github.com/sw965/mdplan/xmath"
)

// simulate runs one selection/expansion/rollout/backup pass rooted at s with
// d steps of budget remaining. It returns the discounted return observed
// from s downward; n/q backups for the edge taken at s are committed only
// after the recursive call below succeeds, so a runtime error anywhere on
// the path rolls back no partial state at s itself.
func (sv *Solver[M, S, A]) simulate(s S, d int) (float64, error) {
	if d == 0 || sv.Model.IsTerminal(s) {
		return 0, nil
	}

	idx, ok := sv.tree.Lookup(s)
	if !ok {
		return sv.expand(s, d)
	}

	node := sv.tree.At(idx)
	ci, err := selectChild(node, sv.Config.ExplorationConstant)
	if err != nil {
		return 0, err
	}

	action := node.Children[ci].Action
	next, r, err := sv.Model.GenerateSR(s, action, sv.Config.Rand)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("%w: generative model returned non-finite reward %v", mdplan.ErrModelContractViolation, r)
	}

	future, err := sv.simulate(next, d-1)
	if err != nil {
		return 0, err
	}

	gamma := sv.Model.Discount()
	if gamma < 0 || gamma > 1 {
		return 0, fmt.Errorf("%w: discount %v outside [0,1]", mdplan.ErrModelContractViolation, gamma)
	}

	g := r + gamma*future

	child := &node.Children[ci]
	child.N++
	node.TotalN++
	child.Q = xmath.IncrementalMean(child.Q, g, child.N)

	return g, nil
}

// expand builds the fixed action-index vector for a newly encountered
// state, seeding each edge from the init_N/init_Q seams, then estimates the
// leaf's value in place of a further recursive descent.
func (sv *Solver[M, S, A]) expand(s S, d int) (float64, error) {
	actions, err := sv.Model.Actions(s)
	if err != nil {
		return 0, err
	}
	if len(actions) == 0 {
		return 0, fmt.Errorf("%w: no legal actions at non-terminal state", mdplan.ErrModelContractViolation)
	}

	children := make([]StateActionNode[A], len(actions))
	totalN := 0
	for i, a := range actions {
		n, err := sv.Config.InitN.Dispatch(sv.Model, s, a)
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: init_N returned negative visit count %d", mdplan.ErrModelContractViolation, n)
		}
		q, err := sv.Config.InitQ.Dispatch(sv.Model, s, a)
		if err != nil {
			return 0, err
		}
		children[i] = StateActionNode[A]{Action: a, N: n, Q: q}
		totalN += n
	}

	sv.tree.Insert(s, &StateNode[A]{TotalN: totalN, Children: children})

	return sv.Config.EstimateValue.Estimate(sv.Model, s, d, sv.Config.Rand)
}
