package dpw

import (
	"fmt"
	"math"

	"github.com/sw965/mdplan"
	"github.com/sw965/mdplan/xmath"
	omwrand "github.com/sw965/omw/math/rand"
)

// simulate runs one selection/widening/rollout/backup pass rooted at s with
// d steps of budget remaining. As in the vanilla package, n/q backups for
// the edge taken at s commit only after the recursive call below succeeds;
// the transition sample drawn by widenState, if any, is not rolled back on
// a downstream error, since it came from the generative model rather than
// from tree bookkeeping.
func (sv *Solver[M, S, A]) simulate(s S, d int) (float64, error) {
	if d == 0 || sv.Model.IsTerminal(s) {
		return 0, nil
	}

	node, ok := sv.tree.Lookup(s)
	if !ok {
		return sv.expand(s, d)
	}

	if sv.Config.EnableActionPW {
		if err := sv.widenActions(s, node); err != nil {
			return 0, err
		}
	}
	if node.NActions() == 0 {
		return 0, fmt.Errorf("%w: state node has no widened actions", mdplan.ErrModelContractViolation)
	}

	action, err := selectAction(node, sv.Config.ExplorationConstant)
	if err != nil {
		return 0, err
	}
	child := node.Children[action]

	next, r, err := sv.widenState(s, action, child)
	if err != nil {
		return 0, err
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

	child.N++
	node.TotalN++
	child.Q = xmath.IncrementalMean(child.Q, g, child.N)

	return g, nil
}

// expand builds a brand-new state node: either its full action set, when
// action progressive widening is off, or a single widened action drawn
// from next_action, when it is on.
func (sv *Solver[M, S, A]) expand(s S, d int) (float64, error) {
	node := newStateNode[S, A]()

	if sv.Config.EnableActionPW {
		if err := sv.widenActions(s, node); err != nil {
			return 0, err
		}
	} else {
		actions, err := sv.Model.Actions(s)
		if err != nil {
			return 0, err
		}
		if len(actions) == 0 {
			return 0, fmt.Errorf("%w: no legal actions at non-terminal state", mdplan.ErrModelContractViolation)
		}
		for _, a := range actions {
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
			node.addChild(a, n, q)
		}
	}

	sv.tree.Insert(s, node)

	return sv.Config.EstimateValue.Estimate(sv.Model, s, d, sv.Config.Rand)
}

// widenActions makes at most one widening attempt per call: if node's
// current action count is below the bound, it proposes one new action from
// next_action and adds it. It is called once per visit to node (from
// simulate and from expand), so the action set grows by at most one child
// per visit, which is what lets the bound track total_n's growth across
// visits rather than being filled in a single burst. If next_action
// proposes an action already present, nothing is added this visit; further
// reproposal strategy is left to the seam.
func (sv *Solver[M, S, A]) widenActions(s S, node *StateNode[S, A]) error {
	allowed := allowedActionCount(sv.Config.KAction, sv.Config.AlphaAction, node.TotalN)
	if node.NActions() >= allowed {
		return nil
	}

	a, err := sv.Config.NextAction.Dispatch(sv.Model, s, node, sv.Config.Rand)
	if err != nil {
		return err
	}
	if node.Has(a) {
		return nil
	}

	n, err := sv.Config.InitN.Dispatch(sv.Model, s, a)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: init_N returned negative visit count %d", mdplan.ErrModelContractViolation, n)
	}
	q, err := sv.Config.InitQ.Dispatch(sv.Model, s, a)
	if err != nil {
		return err
	}
	node.addChild(a, n, q)

	return nil
}

// widenState decides, for the edge (s, action), whether to sample a fresh
// successor from the generative model or reuse a previously observed one,
// per the state-widening bound. Reuse draws uniformly over the recorded
// transition multiset via github.com/sw965/omw/math/rand, which naturally
// weights more frequently observed successors higher.
func (sv *Solver[M, S, A]) widenState(s S, action A, child *StateActionNode[S, A]) (S, float64, error) {
	var zero S

	allowed := allowedStateCount(sv.Config.KState, sv.Config.AlphaState, child.N)

	if child.NActionChildren() < allowed || len(child.Transitions) == 0 {
		next, r, err := sv.Model.GenerateSR(s, action, sv.Config.Rand)
		if err != nil {
			return zero, 0, err
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return zero, 0, fmt.Errorf("%w: generative model returned non-finite reward %v", mdplan.ErrModelContractViolation, r)
		}
		child.recordTransition(next, r)
		return next, r, nil
	}

	t := omwrand.Choice(child.Transitions, sv.Config.Rand)
	return t.Next, t.Reward, nil
}
