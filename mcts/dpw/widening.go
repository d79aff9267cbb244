package dpw

import "github.com/sw965/mdplan/xmath"

// allowedActionCount is the DPW action-widening bound: ceil(k_action *
// N^alpha_action), N floored at 1 so a brand-new state always admits at
// least one action.
func allowedActionCount(k, alpha float64, totalN int) int {
	return xmath.CeilPow(k, alpha, totalN)
}

// allowedStateCount is the DPW state-widening bound at a single edge:
// ceil(k_state * n(s,a)^alpha_state).
func allowedStateCount(k, alpha float64, n int) int {
	return xmath.CeilPow(k, alpha, n)
}
