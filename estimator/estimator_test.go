package estimator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sw965/mdplan/internal/testmdp"
	"github.com/sw965/mdplan/randsrc"
	"github.com/sw965/mdplan/seam"
)

func TestUserEstimateDispatchesHook(t *testing.T) {
	u := NewUser[testmdp.OneStep, int, string](seam.NewLeafConstant[testmdp.OneStep, int, float64](7.5))
	v, err := u.Estimate(testmdp.OneStep{}, 0, 3, randsrc.New(1))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if v != 7.5 {
		t.Fatalf("got %v, want 7.5", v)
	}
}

func TestUserEstimateRequiresHook(t *testing.T) {
	var u User[testmdp.OneStep, int, string]
	if _, err := u.Estimate(testmdp.OneStep{}, 0, 3, randsrc.New(1)); err == nil {
		t.Fatalf("expected error for an unset estimate_value seam")
	}
}

func TestRolloutEstimateDiscountedReturn(t *testing.T) {
	m := testmdp.Chain{N: 3, StepReward: 1, GoalReward: 0, Gamma: 0.5}
	policy := seam.NewPolicyFunc[testmdp.Chain, int, string](func(m testmdp.Chain, s int, rng *rand.Rand) (string, error) {
		return "advance", nil
	})
	ro := NewRollout[testmdp.Chain, int, string](policy)

	v, err := ro.Estimate(m, 0, 3, randsrc.New(1))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	want := 1.0 + 0.5*1.0 + 0.25*1.0
	if math.Abs(v-want) > 1e-9 {
		t.Fatalf("got %v, want %v", v, want)
	}
}

func TestRolloutEstimateStopsAtTerminal(t *testing.T) {
	m := testmdp.Chain{N: 1, StepReward: 1, GoalReward: 0, Gamma: 1.0}
	policy := seam.NewPolicyFunc[testmdp.Chain, int, string](func(m testmdp.Chain, s int, rng *rand.Rand) (string, error) {
		return "advance", nil
	})
	ro := NewRollout[testmdp.Chain, int, string](policy)

	v, err := ro.Estimate(m, 0, 10, randsrc.New(1))
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if v != 1.0 {
		t.Fatalf("rollout should stop at the terminal state after one step, got %v", v)
	}
}

func TestUniformRandomPolicyPicksLegalAction(t *testing.T) {
	policy := UniformRandomPolicy[testmdp.Stochastic, int, string]()
	a, err := policy.Dispatch(testmdp.Stochastic{}, 0, randsrc.New(1))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if a != "a" && a != "b" {
		t.Fatalf("unexpected action %q", a)
	}
}
