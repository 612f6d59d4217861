package munkres_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cehbz/hungarianwells/munkres"
)

// bruteForceOptimal returns the maximum benefit achievable over all
// permutations of {0,...,n-1}, used to verify optimality for small n.
func bruteForceOptimal(c munkres.Matrix) int64 {
	n := len(c)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := int64(-1 << 62)
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			var total int64
			for i, j := range perm {
				total += c[i][j]
			}
			if total > best {
				best = total
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
	return best
}

// TestSolve_OptimalityAgainstBruteForce checks that for n <= 8, the
// solver's total benefit matches the best over every permutation.
func TestSolve_OptimalityAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.IntN(7) // up to 7, well under the n<=8 brute-force bound
		c := make(munkres.Matrix, n)
		for i := range c {
			c[i] = make([]int64, n)
			for j := range c[i] {
				c[i][j] = int64(rng.IntN(50))
			}
		}

		_, total, err := munkres.Solve(c)
		require.NoError(t, err)
		require.Equal(t, bruteForceOptimal(c), total)
	}
}
