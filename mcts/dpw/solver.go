package dpw

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"
	"github.com/sw965/mdplan"
	"github.com/sw965/mdplan/estimator"
	"github.com/sw965/mdplan/mdp"
	"github.com/sw965/mdplan/seam"
)

// Config holds the DPW solver's tunables. The
// action-widening parameters and NextAction are only consulted when
// EnableActionPW is true; with it false, a state's full action set is
// enumerated once via the model's Actions method, matching the vanilla
// variant's behavior for the action dimension while still widening states.
type Config[M mdp.Model[S, A], S comparable, A comparable] struct {
	NIterations         int
	Depth               int
	ExplorationConstant float64
	Rand                *rand.Rand
	EstimateValue       estimator.Estimator[M, S, A]
	InitN               seam.EdgeHook[M, S, A, int]
	InitQ               seam.EdgeHook[M, S, A, float64]

	EnableActionPW bool
	KAction        float64
	AlphaAction    float64
	NextAction     seam.ProposeHook[M, S, A, *StateNode[S, A]]

	KState     float64
	AlphaState float64

	ResetCallback func(*Solver[M, S, A], S)
	EnableTreeVis bool
}

func (c Config[M, S, A]) validate() error {
	if c.NIterations <= 0 {
		return fmt.Errorf("%w: n_iterations must be > 0, got %d", mdplan.ErrInvalidConfig, c.NIterations)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("%w: depth must be > 0, got %d", mdplan.ErrInvalidConfig, c.Depth)
	}
	if c.ExplorationConstant < 0 {
		return fmt.Errorf("%w: exploration_constant must be >= 0, got %v", mdplan.ErrInvalidConfig, c.ExplorationConstant)
	}
	if c.Rand == nil {
		return fmt.Errorf("%w: rand source is required", mdplan.ErrInvalidConfig)
	}
	if c.EstimateValue == nil {
		return fmt.Errorf("%w: estimate_value seam is required", mdplan.ErrInvalidConfig)
	}
	if !c.InitN.Set() {
		return fmt.Errorf("%w: init_N seam is required", mdplan.ErrInvalidConfig)
	}
	if !c.InitQ.Set() {
		return fmt.Errorf("%w: init_Q seam is required", mdplan.ErrInvalidConfig)
	}
	if c.KState <= 0 {
		return fmt.Errorf("%w: k_state must be > 0, got %v", mdplan.ErrInvalidConfig, c.KState)
	}
	if c.AlphaState <= 0 {
		return fmt.Errorf("%w: alpha_state must be > 0, got %v", mdplan.ErrInvalidConfig, c.AlphaState)
	}
	if c.EnableActionPW {
		if c.KAction <= 0 {
			return fmt.Errorf("%w: k_action must be > 0, got %v", mdplan.ErrInvalidConfig, c.KAction)
		}
		if c.AlphaAction <= 0 {
			return fmt.Errorf("%w: alpha_action must be > 0, got %v", mdplan.ErrInvalidConfig, c.AlphaAction)
		}
		if !c.NextAction.Set() {
			return fmt.Errorf("%w: action progressive widening requires a next_action seam", mdplan.ErrUnsupportedCombination)
		}
	}
	return nil
}

// Solver runs DPW planning calls against a fixed MDP model. Its tree
// persists across Action calls unless the embedder's ResetCallback clears
// it.
type Solver[M mdp.Model[S, A], S comparable, A comparable] struct {
	Model  M
	Config Config[M, S, A]
	tree   *Tree[S, A]
}

func New[M mdp.Model[S, A], S comparable, A comparable](model M, cfg Config[M, S, A]) (*Solver[M, S, A], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Solver[M, S, A]{Model: model, Config: cfg, tree: NewTree[S, A]()}, nil
}

func (sv *Solver[M, S, A]) Tree() *Tree[S, A] {
	return sv.tree
}

// Action runs n_iterations simulations rooted at s and returns the
// arg-max-q widened action. The root is expanded up front, outside the
// loop, so that every one of the n_iterations passes is a full
// select/widen/rollout/backup traversal rather than the first one being
// consumed just inserting the root.
func (sv *Solver[M, S, A]) Action(ctx context.Context, s S) (A, error) {
	var zero A

	if sv.Config.ResetCallback != nil {
		sv.Config.ResetCallback(sv, s)
	}

	if sv.Config.EnableTreeVis {
		log.Debug().Msgf("dpw: planning call starting, n_iterations=%d depth=%d", sv.Config.NIterations, sv.Config.Depth)
	}

	if _, ok := sv.tree.Lookup(s); !ok {
		if _, err := sv.expand(s, sv.Config.Depth); err != nil {
			return zero, err
		}
	}

	for i := 0; i < sv.Config.NIterations; i++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}
		if _, err := sv.simulate(s, sv.Config.Depth); err != nil {
			return zero, err
		}
	}

	root, ok := sv.tree.Lookup(s)
	if !ok {
		return zero, fmt.Errorf("%w: root state missing from tree after planning", mdplan.ErrModelContractViolation)
	}
	if root.NActions() == 0 {
		return zero, fmt.Errorf("%w: root state has no widened actions", mdplan.ErrModelContractViolation)
	}

	action := bestAction(root)
	if sv.Config.EnableTreeVis {
		log.Debug().Msgf("dpw: planning call chose action=%+v tree_size=%d", action, sv.tree.Size())
	}
	return action, nil
}
