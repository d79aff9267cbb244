package seam

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/sw965/mdplan"
)

type dummyModel struct{}

func TestEdgeHookConstant(t *testing.T) {
	h := NewEdgeConstant[dummyModel, int, string, int](5)
	if !h.Set() {
		t.Fatalf("constant hook should report set")
	}
	v, err := h.Dispatch(dummyModel{}, 0, "a")
	if err != nil || v != 5 {
		t.Fatalf("Dispatch: v=%v err=%v", v, err)
	}
}

func TestEdgeHookFunction(t *testing.T) {
	h := NewEdgeFunc[dummyModel, int, string, int](func(m dummyModel, s int, a string) (int, error) {
		return len(a), nil
	})
	v, err := h.Dispatch(dummyModel{}, 0, "abc")
	if err != nil || v != 3 {
		t.Fatalf("Dispatch: v=%v err=%v", v, err)
	}
}

type edgeObj struct{}

func (edgeObj) EdgeSeam(m dummyModel, s int, a string) (int, error) { return 9, nil }

func TestEdgeHookObject(t *testing.T) {
	h := NewEdgeObject[dummyModel, int, string, int](edgeObj{})
	v, err := h.Dispatch(dummyModel{}, 0, "a")
	if err != nil || v != 9 {
		t.Fatalf("Dispatch: v=%v err=%v", v, err)
	}
}

func TestEdgeHookUnset(t *testing.T) {
	var h EdgeHook[dummyModel, int, string, int]
	if h.Set() {
		t.Fatalf("zero-value hook should report unset")
	}
	if _, err := h.Dispatch(dummyModel{}, 0, "a"); !errors.Is(err, mdplan.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestEdgeHookNilFunctionIsSeamMisuse(t *testing.T) {
	h := EdgeHook[dummyModel, int, string, int]{kind: Function}
	if _, err := h.Dispatch(dummyModel{}, 0, "a"); !errors.Is(err, mdplan.ErrSeamMisuse) {
		t.Fatalf("expected ErrSeamMisuse, got %v", err)
	}
}

func TestProposeHookThreadsRNG(t *testing.T) {
	var seen *rand.Rand
	h := NewProposeFunc[dummyModel, int, string, int](func(m dummyModel, s int, node int, rng *rand.Rand) (string, error) {
		seen = rng
		return "x", nil
	})
	rng := rand.New(rand.NewSource(1))
	if _, err := h.Dispatch(dummyModel{}, 0, 0, rng); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if seen != rng {
		t.Fatalf("propose hook did not receive the engine's rng instance")
	}
}

func TestPolicyHookNilObjectIsSeamMisuse(t *testing.T) {
	h := PolicyHook[dummyModel, int, string]{kind: Object}
	if _, err := h.Dispatch(dummyModel{}, 0, rand.New(rand.NewSource(1))); !errors.Is(err, mdplan.ErrSeamMisuse) {
		t.Fatalf("expected ErrSeamMisuse, got %v", err)
	}
}

func TestLeafHookConstant(t *testing.T) {
	h := NewLeafConstant[dummyModel, int, float64](1.5)
	v, err := h.Dispatch(dummyModel{}, 0, 3)
	if err != nil || v != 1.5 {
		t.Fatalf("Dispatch: v=%v err=%v", v, err)
	}
}
