// Package wells implements the ResultAssembler: it projects the solver's
// square-matrix matching back onto the original (well, house) pairing and
// totals the distance in problem units.
package wells

import (
	"github.com/cehbz/hungarianwells/costmodel"
	"github.com/cehbz/hungarianwells/geometry"
	"github.com/cehbz/hungarianwells/munkres"
)

// Pairing binds one original well to the K houses the solver assigned to
// it, in ascending house-index order.
type Pairing struct {
	WellIndex int
	Well      geometry.Point
	Houses    []HouseAssignment
}

// HouseAssignment is one house matched to a well, carrying its original
// index for output formatting.
type HouseAssignment struct {
	HouseIndex int
	House      geometry.Point
}

// Problem is the raw geometric instance solved by Solve.
type Problem struct {
	N, K   int
	Wells  []geometry.Point
	Houses []geometry.Point
}

// Solution is the fully assembled result: the per-well pairing and the
// total Euclidean distance in problem units.
type Solution struct {
	Pairs      []Pairing
	TotalDist  float64
	RawBenefit int64
}

// Solve runs the full pipeline for one problem instance: CostModel builds
// the benefit matrix, AssignmentSolver finds the optimal matching, and
// Assemble projects it back onto the original wells and houses.
func Solve(p Problem) (Solution, error) {
	res, err := costmodel.Build(p.N, p.K, p.Wells, p.Houses)
	if err != nil {
		return Solution{}, err
	}
	mu, total, err := munkres.Solve(res.Matrix)
	if err != nil {
		return Solution{}, err
	}
	pairs, dist := Assemble(p.N, p.K, mu, p.Wells, p.Houses)
	return Solution{Pairs: pairs, TotalDist: dist, RawBenefit: total}, nil
}

// Assemble maps each left-vertex i (0 <= i < N*K) back to its original
// well w = i/K, grouping the houses matched to each well in ascending
// house-index order, and recomputes the total distance directly from the
// original float64 coordinates: sum of ||well_i - house_Mu(i)||.
func Assemble(n, k int, mu []int, wells, houses []geometry.Point) ([]Pairing, float64) {
	pairs := make([]Pairing, n)
	for w := 0; w < n; w++ {
		pairs[w] = Pairing{WellIndex: w, Well: wells[w]}
	}

	var total float64
	owner := make([]int, n*k)
	for i := 0; i < n*k; i++ {
		w := i / k
		h := mu[i]
		total += wells[w].Dist(houses[h])
		owner[h] = w
	}
	for h, w := range owner {
		pairs[w].Houses = append(pairs[w].Houses, HouseAssignment{HouseIndex: h, House: houses[h]})
	}
	return pairs, total
}
