package munkres_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cehbz/hungarianwells/munkres"
)

// computeBenefit sums c[i][mu[i]] for a full permutation mu.
func computeBenefit(c munkres.Matrix, mu []int) int64 {
	var total int64
	for i, j := range mu {
		total += c[i][j]
	}
	return total
}

// isPermutation reports whether mu is a permutation of {0,...,n-1}.
func isPermutation(mu []int) bool {
	n := len(mu)
	seen := make([]bool, n)
	for _, j := range mu {
		if j < 0 || j >= n || seen[j] {
			return false
		}
		seen[j] = true
	}
	return true
}

func cloneMatrix(c munkres.Matrix) munkres.Matrix {
	out := make(munkres.Matrix, len(c))
	for i, row := range c {
		out[i] = append([]int64(nil), row...)
	}
	return out
}

type test struct {
	name string
	c    munkres.Matrix
	want int64
}

var tests = []test{
	{
		// Scenario 6: a non-geometric matrix that exercises the solver
		// directly, bypassing the cost model.
		name: "non-geometric 3x3",
		c: munkres.Matrix{
			{4, 1, 3},
			{2, 0, 5},
			{3, 2, 2},
		},
		want: 11,
	},
	{
		name: "single cell",
		c:    munkres.Matrix{{7}},
		want: 7,
	},
	{
		name: "tie requires distinct columns",
		c: munkres.Matrix{
			{5, 5},
			{5, 5},
		},
		want: 10,
	},
}

func TestSolve_Perfection(t *testing.T) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu, total, err := munkres.Solve(tt.c)
			require.NoError(t, err)
			assert.True(t, isPermutation(mu), "Mu must be a permutation, got %v", mu)
			assert.Equal(t, tt.want, total)
			assert.Equal(t, tt.want, computeBenefit(tt.c, mu))
		})
	}
}

func TestSolve_FeasibilityCertificate(t *testing.T) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := munkres.NewSolver(tt.c)
			require.NoError(t, err)
			mu, _, err := s.Solve()
			require.NoError(t, err)

			lu, lv := s.Labels()
			n := len(tt.c)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					assert.GreaterOrEqual(t, lu[i]+lv[j], tt.c[i][j], "feasibility violated at (%d,%d)", i, j)
				}
				assert.Equal(t, tt.c[i][mu[i]], lu[i]+lv[mu[i]], "matched edge (%d,%d) not tight", i, mu[i])
			}
		})
	}
}

func TestSolve_Determinism(t *testing.T) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu1, total1, err1 := munkres.Solve(cloneMatrix(tt.c))
			require.NoError(t, err1)
			mu2, total2, err2 := munkres.Solve(cloneMatrix(tt.c))
			require.NoError(t, err2)
			assert.Equal(t, mu1, mu2)
			assert.Equal(t, total1, total2)
		})
	}
}

func TestSolve_ScalingInvariance(t *testing.T) {
	const alpha = 3
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu, total, err := munkres.Solve(cloneMatrix(tt.c))
			require.NoError(t, err)

			scaled := cloneMatrix(tt.c)
			for i := range scaled {
				for j := range scaled[i] {
					scaled[i][j] *= alpha
				}
			}
			muScaled, totalScaled, err := munkres.Solve(scaled)
			require.NoError(t, err)

			assert.Equal(t, mu, muScaled)
			assert.Equal(t, total*alpha, totalScaled)
		})
	}
}

func TestSolve_RowColumnAddition(t *testing.T) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu, _, err := munkres.Solve(cloneMatrix(tt.c))
			require.NoError(t, err)

			adjusted := cloneMatrix(tt.c)
			for j := range adjusted[0] {
				adjusted[0][j] += 17
			}
			for i := range adjusted {
				adjusted[i][0] += 5
			}
			muAdjusted, _, err := munkres.Solve(adjusted)
			require.NoError(t, err)

			assert.Equal(t, mu, muAdjusted)
		})
	}
}

func TestSolve_DimensionError(t *testing.T) {
	_, _, err := munkres.Solve(munkres.Matrix{
		{1, 2},
		{3},
	})
	var dimErr *munkres.DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestSolve_EmptyMatrix(t *testing.T) {
	mu, total, err := munkres.Solve(munkres.Matrix{})
	require.NoError(t, err)
	assert.Empty(t, mu)
	assert.Zero(t, total)
}

// TestSolve_RandomPermutationAndFeasibility checks that the matching is
// always a permutation and a feasibility certificate over a spread of
// random matrix sizes and value ranges, with a fixed seed for reproducible
// failures.
func TestSolve_RandomPermutationAndFeasibility(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.IntN(12)
		c := make(munkres.Matrix, n)
		for i := range c {
			c[i] = make([]int64, n)
			for j := range c[i] {
				c[i][j] = int64(rng.IntN(200))
			}
		}

		s, err := munkres.NewSolver(c)
		require.NoError(t, err)
		mu, total, err := s.Solve()
		require.NoError(t, err)
		require.True(t, isPermutation(mu))
		require.Equal(t, total, computeBenefit(c, mu))

		lu, lv := s.Labels()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.GreaterOrEqual(t, lu[i]+lv[j], c[i][j])
			}
		}
	}
}
