// Package estimator implements the leaf-value estimators: a direct
// evaluation of the estimate_value seam, and a rollout estimator that
// simulates a supplied policy from the leaf for the remaining depth and
// returns the discounted return. A value estimator is a small interface,
// and Rollout is one implementation among others rather than a subclass.
package estimator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sw965/mdplan"
	"github.com/sw965/mdplan/mdp"
	"github.com/sw965/mdplan/seam"
	omwrand "github.com/sw965/omw/math/rand"
)

// Estimator produces a scalar value estimate at a freshly expanded leaf
// state s with d steps of budget remaining.
type Estimator[M mdp.Model[S, A], S any, A comparable] interface {
	Estimate(m M, s S, d int, rng *rand.Rand) (float64, error)
}

// User wraps the estimate_value seam directly: no MDP interaction beyond
// the seam call itself.
type User[M mdp.Model[S, A], S any, A comparable] struct {
	Hook seam.LeafHook[M, S, float64]
}

func NewUser[M mdp.Model[S, A], S any, A comparable](hook seam.LeafHook[M, S, float64]) User[M, S, A] {
	return User[M, S, A]{Hook: hook}
}

func (u User[M, S, A]) Estimate(m M, s S, d int, rng *rand.Rand) (float64, error) {
	if !u.Hook.Set() {
		return 0, fmt.Errorf("%w: estimate_value seam is required", mdplan.ErrInvalidConfig)
	}
	return u.Hook.Dispatch(m, s, d)
}

// Rollout simulates Policy from the leaf for up to d steps, discounting by
// the model's gamma, and returns the accumulated return. The rollout
// consumes the engine's rng so a whole planning call remains reproducible
// from one seed.
type Rollout[M mdp.Model[S, A], S any, A comparable] struct {
	Policy seam.PolicyHook[M, S, A]
}

func NewRollout[M mdp.Model[S, A], S any, A comparable](policy seam.PolicyHook[M, S, A]) Rollout[M, S, A] {
	return Rollout[M, S, A]{Policy: policy}
}

func (ro Rollout[M, S, A]) Estimate(m M, s S, d int, rng *rand.Rand) (float64, error) {
	if !ro.Policy.Set() {
		return 0, fmt.Errorf("%w: rollout policy is required", mdplan.ErrInvalidConfig)
	}

	gamma := m.Discount()
	if gamma < 0 || gamma > 1 {
		return 0, fmt.Errorf("%w: discount %v outside [0,1]", mdplan.ErrModelContractViolation, gamma)
	}

	g := 0.0
	gammaAcc := 1.0
	st := s

	for t := 0; t < d; t++ {
		if m.IsTerminal(st) {
			break
		}

		a, err := ro.Policy.Dispatch(m, st, rng)
		if err != nil {
			return 0, err
		}

		next, r, err := m.GenerateSR(st, a, rng)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return 0, fmt.Errorf("%w: generative model returned non-finite reward %v", mdplan.ErrModelContractViolation, r)
		}

		g += gammaAcc * r
		gammaAcc *= gamma
		st = next
	}

	return g, nil
}

// UniformRandomPolicy builds a rollout policy that picks uniformly at
// random among the legal actions at each rollout step, via
// github.com/sw965/omw/math/rand.
func UniformRandomPolicy[M mdp.Model[S, A], S any, A comparable]() seam.PolicyHook[M, S, A] {
	return seam.NewPolicyFunc(func(m M, s S, rng *rand.Rand) (A, error) {
		actions, err := m.Actions(s)
		if err != nil {
			return zeroOf[A](), err
		}
		if len(actions) == 0 {
			return zeroOf[A](), fmt.Errorf("%w: no legal actions at non-terminal state", mdplan.ErrModelContractViolation)
		}
		return omwrand.Choice(actions, rng), nil
	})
}

func zeroOf[A any]() A {
	var a A
	return a
}
