// Package seam implements the engine's domain-knowledge dispatch boundary:
// four extension points (init_N, init_Q, estimate_value, next_action),
// each admitting three concrete forms: a constant, a pure function of the
// documented arguments, or an opaque object on which a named operation is
// dispatched. Rather than one interface per seam re-implementing the same
// three-way switch, this package factors the call shapes the four seams
// and the rollout policy actually need (edge-shaped for init_N/init_Q,
// leaf-shaped for estimate_value, propose-shaped for next_action,
// policy-shaped for the rollout policy) into four generic Hook types
// sharing one dispatch discipline, each a single capability interface per
// call shape.
package seam

import (
	"fmt"
	"math/rand"

	"github.com/sw965/mdplan"
)

// Kind tags which of the three forms a Hook was built from.
type Kind uint8

const (
	Unset Kind = iota
	Constant
	Function
	Object
)

// EdgeProvider is the named operation an object-form edge seam (init_N,
// init_Q) must implement.
type EdgeProvider[M any, S any, A any, V any] interface {
	EdgeSeam(m M, s S, a A) (V, error)
}

// EdgeFunc is the function form of an edge seam.
type EdgeFunc[M any, S any, A any, V any] func(m M, s S, a A) (V, error)

// EdgeHook dispatches init_N/init_Q-shaped seams: functions of
// (mdp, state, action).
type EdgeHook[M any, S any, A any, V any] struct {
	kind     Kind
	constant V
	fn       EdgeFunc[M, S, A, V]
	obj      EdgeProvider[M, S, A, V]
}

func NewEdgeConstant[M any, S any, A any, V any](v V) EdgeHook[M, S, A, V] {
	return EdgeHook[M, S, A, V]{kind: Constant, constant: v}
}

func NewEdgeFunc[M any, S any, A any, V any](fn EdgeFunc[M, S, A, V]) EdgeHook[M, S, A, V] {
	return EdgeHook[M, S, A, V]{kind: Function, fn: fn}
}

func NewEdgeObject[M any, S any, A any, V any](obj EdgeProvider[M, S, A, V]) EdgeHook[M, S, A, V] {
	return EdgeHook[M, S, A, V]{kind: Object, obj: obj}
}

// Set reports whether the hook was constructed via one of the New* helpers.
func (h EdgeHook[M, S, A, V]) Set() bool { return h.kind != Unset }

func (h EdgeHook[M, S, A, V]) Dispatch(m M, s S, a A) (V, error) {
	var zero V
	switch h.kind {
	case Constant:
		return h.constant, nil
	case Function:
		if h.fn == nil {
			return zero, fmt.Errorf("%w: function-form edge seam has nil function", mdplan.ErrSeamMisuse)
		}
		return h.fn(m, s, a)
	case Object:
		if h.obj == nil {
			return zero, fmt.Errorf("%w: object-form edge seam has nil object", mdplan.ErrSeamMisuse)
		}
		return h.obj.EdgeSeam(m, s, a)
	default:
		return zero, fmt.Errorf("%w: edge seam not configured", mdplan.ErrInvalidConfig)
	}
}

// LeafProvider is the named operation an object-form leaf seam
// (estimate_value) must implement.
type LeafProvider[M any, S any, V any] interface {
	LeafSeam(m M, s S, depth int) (V, error)
}

type LeafFunc[M any, S any, V any] func(m M, s S, depth int) (V, error)

// LeafHook dispatches estimate_value-shaped seams: functions of
// (mdp, state, remaining depth).
type LeafHook[M any, S any, V any] struct {
	kind     Kind
	constant V
	fn       LeafFunc[M, S, V]
	obj      LeafProvider[M, S, V]
}

func NewLeafConstant[M any, S any, V any](v V) LeafHook[M, S, V] {
	return LeafHook[M, S, V]{kind: Constant, constant: v}
}

func NewLeafFunc[M any, S any, V any](fn LeafFunc[M, S, V]) LeafHook[M, S, V] {
	return LeafHook[M, S, V]{kind: Function, fn: fn}
}

func NewLeafObject[M any, S any, V any](obj LeafProvider[M, S, V]) LeafHook[M, S, V] {
	return LeafHook[M, S, V]{kind: Object, obj: obj}
}

func (h LeafHook[M, S, V]) Set() bool { return h.kind != Unset }

func (h LeafHook[M, S, V]) Dispatch(m M, s S, depth int) (V, error) {
	var zero V
	switch h.kind {
	case Constant:
		return h.constant, nil
	case Function:
		if h.fn == nil {
			return zero, fmt.Errorf("%w: function-form leaf seam has nil function", mdplan.ErrSeamMisuse)
		}
		return h.fn(m, s, depth)
	case Object:
		if h.obj == nil {
			return zero, fmt.Errorf("%w: object-form leaf seam has nil object", mdplan.ErrSeamMisuse)
		}
		return h.obj.LeafSeam(m, s, depth)
	default:
		return zero, fmt.Errorf("%w: leaf seam not configured", mdplan.ErrInvalidConfig)
	}
}

// ProposeProvider is the named operation an object-form next_action seam
// must implement. N is the caller's state-node view type (opaque to this
// package; the DPW solver passes its live *StateNode, whose action
// children the proposer can inspect).
//
// next_action is a controlled stochastic proposer: it receives the engine
// RNG explicitly, so that a proposer needing randomness never falls back
// to a hidden global source.
type ProposeProvider[M any, S any, A any, N any] interface {
	ProposeSeam(m M, s S, node N, rng *rand.Rand) (A, error)
}

type ProposeFunc[M any, S any, A any, N any] func(m M, s S, node N, rng *rand.Rand) (A, error)

// ProposeHook dispatches next_action: functions of (mdp, state, snode, rng).
type ProposeHook[M any, S any, A any, N any] struct {
	kind     Kind
	constant A
	fn       ProposeFunc[M, S, A, N]
	obj      ProposeProvider[M, S, A, N]
}

func NewProposeConstant[M any, S any, A any, N any](a A) ProposeHook[M, S, A, N] {
	return ProposeHook[M, S, A, N]{kind: Constant, constant: a}
}

func NewProposeFunc[M any, S any, A any, N any](fn ProposeFunc[M, S, A, N]) ProposeHook[M, S, A, N] {
	return ProposeHook[M, S, A, N]{kind: Function, fn: fn}
}

func NewProposeObject[M any, S any, A any, N any](obj ProposeProvider[M, S, A, N]) ProposeHook[M, S, A, N] {
	return ProposeHook[M, S, A, N]{kind: Object, obj: obj}
}

func (h ProposeHook[M, S, A, N]) Set() bool { return h.kind != Unset }

func (h ProposeHook[M, S, A, N]) Dispatch(m M, s S, node N, rng *rand.Rand) (A, error) {
	var zero A
	switch h.kind {
	case Constant:
		return h.constant, nil
	case Function:
		if h.fn == nil {
			return zero, fmt.Errorf("%w: function-form propose seam has nil function", mdplan.ErrSeamMisuse)
		}
		return h.fn(m, s, node, rng)
	case Object:
		if h.obj == nil {
			return zero, fmt.Errorf("%w: object-form propose seam has nil object", mdplan.ErrSeamMisuse)
		}
		return h.obj.ProposeSeam(m, s, node, rng)
	default:
		return zero, fmt.Errorf("%w: propose seam not configured", mdplan.ErrInvalidConfig)
	}
}

// PolicyProvider is the named operation an object-form rollout policy must
// implement. Like ProposeProvider, it receives the engine RNG explicitly so
// a policy needing randomness stays reproducible from one seed.
type PolicyProvider[M any, S any, A any] interface {
	PolicySeam(m M, s S, rng *rand.Rand) (A, error)
}

type PolicyFunc[M any, S any, A any] func(m M, s S, rng *rand.Rand) (A, error)

// PolicyHook dispatches a rollout policy: functions of (mdp, state, rng).
type PolicyHook[M any, S any, A any] struct {
	kind     Kind
	constant A
	fn       PolicyFunc[M, S, A]
	obj      PolicyProvider[M, S, A]
}

func NewPolicyConstant[M any, S any, A any](a A) PolicyHook[M, S, A] {
	return PolicyHook[M, S, A]{kind: Constant, constant: a}
}

func NewPolicyFunc[M any, S any, A any](fn PolicyFunc[M, S, A]) PolicyHook[M, S, A] {
	return PolicyHook[M, S, A]{kind: Function, fn: fn}
}

func NewPolicyObject[M any, S any, A any](obj PolicyProvider[M, S, A]) PolicyHook[M, S, A] {
	return PolicyHook[M, S, A]{kind: Object, obj: obj}
}

func (h PolicyHook[M, S, A]) Set() bool { return h.kind != Unset }

func (h PolicyHook[M, S, A]) Dispatch(m M, s S, rng *rand.Rand) (A, error) {
	var zero A
	switch h.kind {
	case Constant:
		return h.constant, nil
	case Function:
		if h.fn == nil {
			return zero, fmt.Errorf("%w: function-form policy has nil function", mdplan.ErrSeamMisuse)
		}
		return h.fn(m, s, rng)
	case Object:
		if h.obj == nil {
			return zero, fmt.Errorf("%w: object-form policy has nil object", mdplan.ErrSeamMisuse)
		}
		return h.obj.PolicySeam(m, s, rng)
	default:
		return zero, fmt.Errorf("%w: policy not configured", mdplan.ErrInvalidConfig)
	}
}
