package mcts

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

// Config holds the vanilla solver's tunables.
type Config[M mdp.Model[S, A], S comparable, A comparable] struct {
	NIterations         int
	Depth               int
	ExplorationConstant float64
	Rand                *rand.Rand
	EstimateValue       estimator.Estimator[M, S, A]
	InitN               seam.EdgeHook[M, S, A, int]
	InitQ               seam.EdgeHook[M, S, A, float64]

	// ResetCallback, if set, runs at the start of every Action call before
	// any simulation, e.g. to let the caller decide whether to keep the
	// existing tree or clear it.
	ResetCallback func(*Solver[M, S, A], S)

	// EnableTreeVis governs nothing about search correctness; it only
	// switches on the debug-level log events at the start and end of each
	// Action call.
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
	return nil
}

// Solver runs vanilla MCTS planning calls against a fixed MDP model,
// reusing its arena tree across calls unless the embedder's ResetCallback
// clears it.
type Solver[M mdp.Model[S, A], S comparable, A comparable] struct {
	Model  M
	Config Config[M, S, A]
	tree   *Tree[S, A]
}

// New validates cfg and constructs a Solver with an empty tree.
func New[M mdp.Model[S, A], S comparable, A comparable](model M, cfg Config[M, S, A]) (*Solver[M, S, A], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Solver[M, S, A]{Model: model, Config: cfg, tree: NewTree[S, A]()}, nil
}

// Tree exposes the underlying arena for introspection (see the stats
// package); callers must not mutate it.
func (sv *Solver[M, S, A]) Tree() *Tree[S, A] {
	return sv.tree
}

// Action runs n_iterations simulations rooted at s and returns the
// arg-max-q child action. The root is expanded up front, outside the loop,
// so that every one of the n_iterations passes is a full
// select/expand/rollout/backup traversal rather than the first one being
// consumed just inserting the root.
func (sv *Solver[M, S, A]) Action(ctx context.Context, s S) (A, error) {
	var zero A

	if sv.Config.ResetCallback != nil {
		sv.Config.ResetCallback(sv, s)
	}

	if sv.Config.EnableTreeVis {
		log.Debug().Msgf("mcts: planning call starting, n_iterations=%d depth=%d", sv.Config.NIterations, sv.Config.Depth)
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

	idx, ok := sv.tree.Lookup(s)
	if !ok {
		return zero, fmt.Errorf("%w: root state missing from tree after planning", mdplan.ErrModelContractViolation)
	}
	root := sv.tree.At(idx)
	if len(root.Children) == 0 {
		return zero, fmt.Errorf("%w: root state has no legal actions", mdplan.ErrModelContractViolation)
	}

	action := root.Children[bestChild(root)].Action
	if sv.Config.EnableTreeVis {
		log.Debug().Msgf("mcts: planning call chose action=%+v tree_size=%d", action, sv.tree.Size())
	}
	return action, nil
}
