// Package xmath collects the small numeric helpers shared by the vanilla
// and DPW search drivers: the progressive-widening count formula and the
// incremental-mean backup update, kept in a small standalone file rather
// than inline in the algorithm that uses them.
package xmath

import "math"

// CeilPow evaluates ceil(k * n^alpha), the progressive-widening allowed-count
// formula shared by DPW's action and state widening, with n floored at 1
// so the first visit to a node always allows ceil(k) >= 1 children.
func CeilPow(k, alpha float64, n int) int {
	if n < 1 {
		n = 1
	}
	return int(math.Ceil(k * math.Pow(float64(n), alpha)))
}

// IncrementalMean folds a new sample into a running mean given the sample
// count *after* including the new sample.
func IncrementalMean(mean, sample float64, nAfter int) float64 {
	return mean + (sample-mean)/float64(nAfter)
}
