package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Uniform creates a leaf initialized from U(lo, hi).
func Uniform(g *autodiff.Graph, rng *rand.Rand, lo, hi float64) autodiff.Value {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return g.Leaf(lo + rng.Float64()*(hi-lo))
}

// newRand returns cfg.Rand, or a source seeded with cfg.Seed.
func newRand(cfg Config) *rand.Rand {
	if cfg.Rand != nil {
		return cfg.Rand
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(cfg.Seed))
}
