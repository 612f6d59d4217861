// Package costmodel builds the square benefit matrix the munkres solver
// consumes from a raw wells/houses problem instance: well duplication,
// Euclidean distance, integerisation, and the min-to-max conversion the
// solver requires.
package costmodel

import (
	"fmt"

	"github.com/cehbz/hungarianwells/geometry"
	"github.com/cehbz/hungarianwells/munkres"
)

// InputStructureError reports a malformed problem instance: the number of
// houses does not match N*K.
type InputStructureError struct {
	N, K, Houses int
}

func (e *InputStructureError) Error() string {
	return fmt.Sprintf("costmodel: N*K=%d does not match the number of houses (%d)", e.N*e.K, e.Houses)
}

// Result is the output of Build: the benefit matrix the solver maximizes
// over, and M, the scaling offset from which a total benefit converts back
// into a total distance as (N*K*M - benefit)/100. wells.Assemble does not
// use M; it recomputes the distance from the original coordinates.
type Result struct {
	Matrix munkres.Matrix
	M      int64
}

// Build expands N wells into n=N*K left-vertices (well i//K is duplicated K
// times contiguously), computes the n x n integer distance matrix, and
// converts it from a minimization to the maximization form the solver
// requires: C[i][j] = M - dist_int(i,j), where M is the largest integer
// distance in the instance.
func Build(n, k int, wells, houses []geometry.Point) (Result, error) {
	if n < 1 || k < 1 {
		return Result{}, fmt.Errorf("costmodel: N and K must be >= 1, got N=%d K=%d", n, k)
	}
	if n*k != len(houses) {
		return Result{}, &InputStructureError{N: n, K: k, Houses: len(houses)}
	}
	if len(wells) != n {
		return Result{}, fmt.Errorf("costmodel: expected %d wells, got %d", n, len(wells))
	}

	dim := n * k
	distInt := make([][]int64, dim)
	var max int64
	for i := 0; i < dim; i++ {
		well := wells[i/k]
		distInt[i] = make([]int64, dim)
		for j := 0; j < dim; j++ {
			d := well.Dist(houses[j])
			di := int64(geometry.Round2(d) * 100)
			distInt[i][j] = di
			if di > max {
				max = di
			}
		}
	}

	c := make(munkres.Matrix, dim)
	for i := 0; i < dim; i++ {
		c[i] = make([]int64, dim)
		for j := 0; j < dim; j++ {
			c[i][j] = max - distInt[i][j]
		}
	}

	return Result{Matrix: c, M: max}, nil
}
