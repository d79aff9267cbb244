// Package randsrc provides the engine's seedable RNG source: a Mersenne
// Twister via github.com/seehuhn/mt19937 rather than math/rand's default
// source.
package randsrc

import (
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// New returns a *rand.Rand seeded deterministically from seed. Two engines
// built from the same seed draw identically, which is what the
// reproducibility guarantee (same seed, same MDP, same seams => same tree)
// rests on.
func New(seed int64) *rand.Rand {
	src := mt19937.New()
	src.Seed(seed)
	return rand.New(src)
}
