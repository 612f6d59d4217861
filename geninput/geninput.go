// Package geninput generates random wells/houses problem instances for the
// CLI's generate and benchmark modes.
package geninput

import (
	"math/rand/v2"

	"github.com/cehbz/hungarianwells/geometry"
	"github.com/cehbz/hungarianwells/ioformat"
)

// Generate samples N well points and N*K house points uniformly in
// [0,10)x[0,10), rounded to two decimals, matching
// original_source/src/helpers/input_handler.py's generate_input.
func Generate(n, k int, rng *rand.Rand) ioformat.ProblemInput {
	return ioformat.ProblemInput{
		N:      n,
		K:      k,
		Wells:  randomPoints(n, rng),
		Houses: randomPoints(n*k, rng),
	}
}

func randomPoints(count int, rng *rand.Rand) []geometry.Point {
	pts := make([]geometry.Point, count)
	for i := range pts {
		pts[i] = geometry.Point{
			X: geometry.Round2(rng.Float64() * 10),
			Y: geometry.Round2(rng.Float64() * 10),
		}
	}
	return pts
}
