// Package mdp declares the external contract the search engine consumes: a
// fully-observed, generatively-sampleable Markov Decision Process. The
// package ships no models; embedders implement Model against their own
// state and action types.
package mdp

import "math/rand"

// Model is the abstract MDP an engine plans against. S and A are the
// embedder's state and action types. Both solvers require S to be
// comparable, since each keys its tree nodes by state in a map; A is
// comparable since the DPW variant keys action children by action.
type Model[S any, A comparable] interface {
	// Actions enumerates the legal actions at s. Required by the vanilla
	// variant always, and by DPW only when action progressive widening is
	// disabled.
	Actions(s S) ([]A, error)

	// GenerateSR draws one successor state and reward from the generative
	// model of (s, a), using rng for any stochastic choice. Required by
	// every variant.
	GenerateSR(s S, a A, rng *rand.Rand) (S, float64, error)

	// Discount returns gamma in [0, 1].
	Discount() float64

	// IsTerminal reports whether s has no legal continuation.
	IsTerminal(s S) bool
}
