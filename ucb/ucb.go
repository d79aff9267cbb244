// Package ucb computes the UCB1 selection score shared by the vanilla and
// DPW variants: q + c*sqrt(ln(total_n)/n). The policy-prior term some UCB
// variants carry is dropped, since this formula has no prior; the
// exploration arithmetic runs in float32 via github.com/chewxy/math32,
// with NaN/Inf validation on every intermediate term. The running mean q
// itself stays float64 so the incremental-mean invariant holds to full
// precision.
package ucb

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/sw965/mdplan"
)

// Score returns q + c*sqrt(ln(totalN)/n). Callers own the "n == 0" and
// "totalN == 0" special cases (select an unvisited child outright, or
// admit any child on the very first visit); Score requires n >= 1 and
// totalN >= 1.
func Score(q, c float64, totalN, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: ucb.Score requires n >= 1, got %d", mdplan.ErrInvalidConfig, n)
	}
	if totalN <= 0 {
		return 0, fmt.Errorf("%w: ucb.Score requires totalN >= 1, got %d", mdplan.ErrInvalidConfig, totalN)
	}
	if c < 0 {
		return 0, fmt.Errorf("%w: exploration constant must be >= 0, got %v", mdplan.ErrInvalidConfig, c)
	}

	ln := math32.Log(float32(totalN))
	if math32.IsNaN(ln) || math32.IsInf(ln, 0) {
		return 0, fmt.Errorf("%w: ucb.Score produced a non-finite log term for totalN=%d", mdplan.ErrModelContractViolation, totalN)
	}

	explore := float32(c) * math32.Sqrt(ln/float32(n))
	if math32.IsNaN(explore) || math32.IsInf(explore, 0) {
		return 0, fmt.Errorf("%w: ucb.Score produced a non-finite exploration term", mdplan.ErrModelContractViolation)
	}

	return q + float64(explore), nil
}
