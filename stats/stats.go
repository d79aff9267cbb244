// Package stats computes read-only summary statistics over a solver's tree
// for introspection and debugging: it never influences search behavior.
package stats

import (
	omath "github.com/sw965/omw/math"
	"gonum.org/v1/gonum/stat"
)

// EdgeSummary is a descriptive summary of a state node's edge visit counts
// or backed-up values.
type EdgeSummary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes an EdgeSummary over xs using gonum.org/v1/gonum/stat.
func Summarize(xs []float64) EdgeSummary {
	if len(xs) == 0 {
		return EdgeSummary{}
	}

	mean, std := stat.MeanStdDev(xs, nil)
	lo := xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
	}
	hi := omath.Max(xs...)

	return EdgeSummary{Mean: mean, StdDev: std, Min: lo, Max: hi}
}

// VisitShare returns, for each ns[i], its fraction of the total visit
// count. Returns nil if the total is zero.
func VisitShare(ns []int) []float64 {
	fs := make([]float64, len(ns))
	for i, n := range ns {
		fs[i] = float64(n)
	}
	sum := omath.Sum(fs...)
	if sum == 0 {
		return nil
	}
	shares := make([]float64, len(ns))
	for i, f := range fs {
		shares[i] = f / sum
	}
	return shares
}

// EntropyBits returns the Shannon entropy, in bits, of the visit-share
// distribution over an edge's children (a rough measure of how
// concentrated the search became on a single action).
func EntropyBits(ns []int) float64 {
	shares := VisitShare(ns)
	if shares == nil {
		return 0
	}
	const ln2 = 0.6931471805599453
	return stat.Entropy(shares) / ln2
}
