package munkres

import (
	"fmt"
	"math"
)

// Unmatched marks an absent entry in the matching arrays Mu and Mv.
const Unmatched = -1

// noParent marks a left vertex with no parent in the alternating tree: it
// is either the current phase's root or not in S at all. The two cases
// never need to be told apart, since the augmentation walk only ever
// dereferences prev for vertices that are in S.
const noParent = -1

// Solver owns the mutable state of one run of the Hungarian algorithm: the
// dual labels, the matching, the alternating tree and the slack vector. A
// Solver must not be reused across concurrent Solve calls, but independent
// Solvers over independent matrices share nothing and may run in parallel.
type Solver struct {
	n int
	c Matrix

	lu, lv       []int64
	mu, mv       []int
	matchedCount int

	inTree  []bool // S: left vertices in the alternating tree
	inRight []bool // T: right vertices in the alternating tree
	parent  []int  // prev: parent left-vertex on the path to the root

	slack    []int64
	slackSrc []int

	queue       []int
	qHead, qLen int
}

// NewSolver validates c and allocates the O(n) working arrays for one run
// of the algorithm. c is not copied; the caller must not mutate it for the
// lifetime of the Solver.
func NewSolver(c Matrix) (*Solver, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	n := c.Dim()
	s := &Solver{
		n:        n,
		c:        c,
		lu:       make([]int64, n),
		lv:       make([]int64, n),
		mu:       make([]int, n),
		mv:       make([]int, n),
		inTree:   make([]bool, n),
		inRight:  make([]bool, n),
		parent:   make([]int, n),
		slack:    make([]int64, n),
		slackSrc: make([]int, n),
		queue:    make([]int, n),
	}
	for i := range s.mu {
		s.mu[i] = Unmatched
		s.mv[i] = Unmatched
	}
	return s, nil
}

// Solve computes the matching that maximizes the sum of Matrix c over the
// matching, returning a permutation of {0,...,n-1} and the total benefit.
func Solve(c Matrix) (mu []int, total int64, err error) {
	s, err := NewSolver(c)
	if err != nil {
		return nil, 0, err
	}
	return s.Solve()
}

// Labels returns copies of the current dual labels, the optimality
// certificate: lu[i]+lv[j] >= c[i][j] everywhere, with equality on every
// matched edge. Intended for test inspection after Solve returns.
func (s *Solver) Labels() (lu, lv []int64) {
	lu = make([]int64, s.n)
	lv = make([]int64, s.n)
	copy(lu, s.lu)
	copy(lv, s.lv)
	return lu, lv
}

// Solve runs the n outer phases of the algorithm and returns the resulting
// matching. Any InvariantViolation raised internally is recovered here and
// returned as an error: the solver never panics across its public API.
func (s *Solver) Solve() (mu []int, total int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*InvariantViolation); ok {
				mu, total, err = nil, 0, iv
				return
			}
			panic(r)
		}
	}()

	if s.n == 0 {
		return []int{}, 0, nil
	}

	s.initialLabeling()
	for phase := 0; phase < s.n; phase++ {
		root := s.firstUnmatchedLeft()
		if root < 0 {
			panic(&InvariantViolation{Msg: "no unmatched left vertex remains before the matching is perfect"})
		}
		before := s.matchedCount
		s.runPhase(root)
		if s.matchedCount != before+1 {
			panic(&InvariantViolation{Msg: "matched_count did not advance by exactly one during a phase"})
		}
	}

	result := make([]int, s.n)
	copy(result, s.mu)
	return result, s.totalBenefit(), nil
}

// initialLabeling sets lv to zero and lu[i] to the row maximum, which is
// feasible with an empty matching.
func (s *Solver) initialLabeling() {
	for i := 0; i < s.n; i++ {
		row := s.c[i]
		max := row[0]
		for j := 1; j < s.n; j++ {
			if row[j] > max {
				max = row[j]
			}
		}
		s.lu[i] = max
		s.lv[i] = 0
	}
}

// firstUnmatchedLeft returns the smallest index of an unmatched left
// vertex, or -1 if the matching is already perfect. Scanning in ascending
// order makes phase order deterministic.
func (s *Solver) firstUnmatchedLeft() int {
	for i := 0; i < s.n; i++ {
		if s.mu[i] == Unmatched {
			return i
		}
	}
	return -1
}

// runPhase grows the matching by exactly one edge, rooted at the given
// unmatched left vertex.
func (s *Solver) runPhase(root int) {
	s.resetTree()
	s.inTree[root] = true
	s.parent[root] = noParent
	s.enqueue(root)

	rootRow := s.c[root]
	for j := 0; j < s.n; j++ {
		s.slack[j] = s.lu[root] + s.lv[j] - rootRow[j]
		s.slackSrc[j] = root
	}

	for {
		if x, y, ok := s.bfsExpand(); ok {
			s.augment(x, y)
			return
		}
		delta := s.minSlackOutsideTree()
		if delta <= 0 {
			panic(&InvariantViolation{Msg: fmt.Sprintf("non-positive slack delta %d encountered during relaxation", delta)})
		}
		s.relabel(delta)
		if x, y, ok := s.extendTree(); ok {
			s.augment(x, y)
			return
		}
	}
}

// bfsExpand drains the BFS queue, following tight edges out of each
// dequeued left vertex. Right vertices are scanned in ascending index
// order, which fixes augmenting-path selection deterministically.
func (s *Solver) bfsExpand() (x, y int, augmenting bool) {
	for s.qLen > 0 {
		x := s.dequeue()
		row := s.c[x]
		lux := s.lu[x]
		for y := 0; y < s.n; y++ {
			if s.inRight[y] {
				continue
			}
			if lux+s.lv[y] != row[y] {
				continue
			}
			if s.mv[y] == Unmatched {
				return x, y, true
			}
			z := s.mv[y]
			s.inRight[y] = true
			if !s.inTree[z] {
				s.parent[z] = x
				s.inTree[z] = true
				s.updateSlack(z)
				s.enqueue(z)
			}
		}
	}
	return 0, 0, false
}

// updateSlack relaxes slack[j] against the newly committed left vertex z
// for every right vertex j not yet in T.
func (s *Solver) updateSlack(z int) {
	row := s.c[z]
	luz := s.lu[z]
	for j := 0; j < s.n; j++ {
		if s.inRight[j] {
			continue
		}
		v := luz + s.lv[j] - row[j]
		if v < s.slack[j] {
			s.slack[j] = v
			s.slackSrc[j] = z
		}
	}
}

// minSlackOutsideTree returns delta, the minimum slack among right
// vertices not yet in T.
func (s *Solver) minSlackOutsideTree() int64 {
	min := int64(math.MaxInt64)
	for j := 0; j < s.n; j++ {
		if s.inRight[j] {
			continue
		}
		if s.slack[j] < min {
			min = s.slack[j]
		}
	}
	return min
}

// relabel applies the label update for the given delta: lu decreases on S,
// lv increases on T, and slack shrinks outside T by the same amount. This
// preserves feasibility and creates at least one new tight edge.
func (s *Solver) relabel(delta int64) {
	for i := 0; i < s.n; i++ {
		if s.inTree[i] {
			s.lu[i] -= delta
		}
	}
	for j := 0; j < s.n; j++ {
		if s.inRight[j] {
			s.lv[j] += delta
		} else {
			s.slack[j] -= delta
		}
	}
}

// extendTree walks the newly-zero slack entries in ascending order,
// pulling their matched left vertex into S (or reporting an augmenting
// path if one is unmatched).
func (s *Solver) extendTree() (x, y int, augmenting bool) {
	for j := 0; j < s.n; j++ {
		if s.inRight[j] || s.slack[j] != 0 {
			continue
		}
		x := s.slackSrc[j]
		if s.mv[j] == Unmatched {
			return x, j, true
		}
		z := s.mv[j]
		s.inRight[j] = true
		if !s.inTree[z] {
			s.parent[z] = x
			s.inTree[z] = true
			s.updateSlack(z)
			s.enqueue(z)
		}
	}
	return 0, 0, false
}

// augment flips the matching along the alternating path ending at the
// edge (xEnd, yEnd), walking back to the phase's root via prev.
func (s *Solver) augment(xEnd, yEnd int) {
	curLeft, curRight := xEnd, yEnd
	for curLeft != noParent {
		nextRight := s.mu[curLeft]
		s.assertTight(curLeft, curRight)
		s.mv[curRight] = curLeft
		s.mu[curLeft] = curRight
		curLeft, curRight = s.parent[curLeft], nextRight
	}
	s.matchedCount++
}

// assertTight is the tightness check required before an edge is allowed
// to enter the matching: lu[i]+lv[j] must equal c[i][j].
func (s *Solver) assertTight(i, j int) {
	if s.lu[i]+s.lv[j] != s.c[i][j] {
		panic(&InvariantViolation{Msg: fmt.Sprintf(
			"matched edge (%d,%d) is not tight: lu+lv=%d c=%d", i, j, s.lu[i]+s.lv[j], s.c[i][j])})
	}
}

func (s *Solver) totalBenefit() int64 {
	var total int64
	for i := 0; i < s.n; i++ {
		total += s.c[i][s.mu[i]]
	}
	return total
}

func (s *Solver) resetTree() {
	for i := 0; i < s.n; i++ {
		s.inTree[i] = false
		s.inRight[i] = false
		s.parent[i] = noParent
	}
	s.qHead, s.qLen = 0, 0
}

func (s *Solver) enqueue(v int) {
	tail := (s.qHead + s.qLen) % s.n
	s.queue[tail] = v
	s.qLen++
}

func (s *Solver) dequeue() int {
	v := s.queue[s.qHead]
	s.qHead = (s.qHead + 1) % s.n
	s.qLen--
	return v
}
