// Package munkres implements the Kuhn-Munkres (Hungarian) algorithm for the
// balanced assignment problem: given an n x n non-negative integer cost
// matrix C, find a permutation Mu of {0,...,n-1} maximizing the sum of
// C[i][Mu[i]].
//
// The solver maintains dual labels (lu, lv), a slack vector, an alternating
// tree (S, T, prev) and a matching (Mu, Mv), and runs n outer phases, each
// growing the matching by exactly one edge via BFS over tight edges and
// label relaxation when the BFS queue drains without an augmenting path.
package munkres
