package lcs

import (
	"fmt"

	"github.com/katalvlaran/dynprog/internal/table"
)

// Compute - Longest Common Subsequence
//
// Algorithm Outline (FullMatrix):
//  1. Let n = len(a), m = len(b). Allocate an (n+1)x(m+1) table L.
//     Row 0 and column 0 stay zero: the LCS with an empty prefix is empty.
//  2. For i = 1..n, j = 1..m:
//     if a[i-1] == b[j-1]: L[i][j] = L[i-1][j-1] + 1
//     else:                L[i][j] = max(L[i-1][j], L[i][j-1])
//  3. Length = L[n][m].
//  4. If ReturnSubsequence, walk back from (n, m): on a match step
//     diagonally and emit the token, otherwise move toward the larger of
//     the top and left neighbours (top on ties).
//
// TwoRows keeps only rows i-1 and i and lays the shorter input along the
// columns, so memory is O(min(n, m)). This is sound because the LCS
// length is symmetric in its arguments.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(min(n,m)) (TwoRows)
//
// Errors:
//   - ErrBadMemoryMode          - unknown opts.MemoryMode.
//   - ErrSubsequenceNeedsMatrix - ReturnSubsequence with TwoRows.
//
// A nil opts behaves like DefaultOptions().
func Compute[T comparable](a, b []T, opts *Options) (Result[T], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	switch o.MemoryMode {
	case FullMatrix:
	case TwoRows:
		if o.ReturnSubsequence {
			return Result[T]{}, ErrSubsequenceNeedsMatrix
		}

		return Result[T]{Length: twoRows(a, b)}, nil
	default:
		return Result[T]{}, fmt.Errorf("mode %d: %w", o.MemoryMode, ErrBadMemoryMode)
	}

	lookup := fill(a, b)
	res := Result[T]{Length: lookup.At(len(a), len(b))}
	if o.ReturnSubsequence {
		res.Subsequence = backtrack(a, b, lookup)
	}

	return res, nil
}

// Length returns the LCS length of two strings, compared rune by rune.
// Empty inputs yield 0.
func Length(a, b string) int {
	return LengthOf([]rune(a), []rune(b))
}

// LengthOf returns the LCS length of two token sequences using the
// full-matrix table. It never fails.
func LengthOf[T comparable](a, b []T) int {
	return fill(a, b).At(len(a), len(b))
}

// fill builds the (n+1)x(m+1) lookup table.
func fill[T comparable](a, b []T) *table.Table {
	n, m := len(a), len(b)
	lookup := table.New(n+1, m+1)
	for i := 1; i <= n; i++ {
		prev, curr := lookup.Row(i-1), lookup.Row(i)
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
	}

	return lookup
}

// twoRows computes only the length with a rolling pair of rows.
func twoRows[T comparable](a, b []T) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	m := len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack recovers one LCS from a filled table.
func backtrack[T comparable](a, b []T, lookup *table.Table) []T {
	i, j := len(a), len(b)
	out := make([]T, 0, lookup.At(i, j))
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out = append(out, a[i-1])
			i--
			j--
		case lookup.At(i-1, j) >= lookup.At(i, j-1):
			i--
		default:
			j--
		}
	}
	// reverse in-place
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}
