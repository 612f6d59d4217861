// Package bench times the solver across a grid of problem sizes and
// renders the resulting time-complexity curve.
package bench

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cehbz/hungarianwells/geninput"
	"github.com/cehbz/hungarianwells/wells"
)

// Sample is one grid cell of the N x K benchmark sweep: how long Solve
// took for a freshly generated instance of that size.
type Sample struct {
	N, K    int
	Elapsed time.Duration
}

// Sweep generates one random instance per (n,k) in [1,maxN] x [1,maxK] and
// times wells.Solve over it, mirroring original_source/main.py's BENCHMARK
// mode (measurements = np.zeros((N,K)); timeit.timeit(...)).
func Sweep(maxN, maxK int) ([]Sample, error) {
	if maxN < 1 || maxK < 1 {
		return nil, fmt.Errorf("bench: maxN and maxK must be >= 1, got maxN=%d maxK=%d", maxN, maxK)
	}

	rng := rand.New(rand.NewPCG(uint64(maxN), uint64(maxK)))
	samples := make([]Sample, 0, maxN*maxK)
	for n := 1; n <= maxN; n++ {
		for k := 1; k <= maxK; k++ {
			in := geninput.Generate(n, k, rng)

			start := time.Now()
			if _, err := wells.Solve(wells.Problem{N: n, K: k, Wells: in.Wells, Houses: in.Houses}); err != nil {
				return nil, fmt.Errorf("bench: solve failed at N=%d K=%d: %w", n, k, err)
			}
			samples = append(samples, Sample{N: n, K: k, Elapsed: time.Since(start)})
		}
	}
	return samples, nil
}
