package munkres

import "fmt"

// DimensionError reports a cost matrix that is not square. It is returned
// before any solver state is mutated.
type DimensionError struct {
	Rows, Cols int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("munkres: cost matrix must be square, got %d rows and a row of length %d", e.Rows, e.Cols)
}

// InvariantViolation signals an internal bug: an edge entering the matching
// that is not tight, a non-positive slack delta at a relaxation step, or a
// phase that failed to advance the matching. It is fatal and never retried.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("munkres: invariant violated: %s", e.Msg)
}
