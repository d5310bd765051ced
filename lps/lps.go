package lps

import "github.com/katalvlaran/dynprog/internal/table"

// Length returns the LPS length of s, compared rune by rune.
// It returns 0 for "" and 1 for any single-rune string.
func Length(s string) int {
	return LengthOf([]rune(s))
}

// LengthOf returns the LPS length of a token sequence.
//
// Algorithm Outline:
//  1. n = len(s); if n == 0 return 0.
//  2. L[i][i] = 1 for every i.
//  3. For size = 2..n, for i = 0..n-size, j = i+size-1:
//     s[i] == s[j] && size == 2: L[i][j] = 2
//     s[i] == s[j]:              L[i][j] = L[i+1][j-1] + 2
//     otherwise:                 L[i][j] = max(L[i][j-1], L[i+1][j])
//  4. Return L[0][n-1].
func LengthOf[T comparable](s []T) int {
	if len(s) == 0 {
		return 0
	}

	return fill(s).At(0, len(s)-1)
}

// Table returns the n×n subproblem matrix for s: cell [i][j] is the LPS
// length of s[i..j] for i ≤ j, and 0 below the diagonal. The result is
// owned by the caller. Empty input yields an empty matrix.
func Table[T comparable](s []T) [][]int {
	if len(s) == 0 {
		return [][]int{}
	}

	return fill(s).Slices()
}

// Subsequence recovers one longest palindromic subsequence of s.
//
// The walk starts at the full range [0, n-1]. Matching ends are emitted
// and both bounds move inwards; otherwise the bound whose removal keeps
// the larger table value moves (the right one on ties). A lone centre
// token is placed between the mirrored halves.
func Subsequence[T comparable](s []T) []T {
	n := len(s)
	if n == 0 {
		return nil
	}

	lookup := fill(s)
	half := make([]T, 0, lookup.At(0, n-1)/2)
	var (
		centre    T
		hasCentre bool
	)
	i, j := 0, n-1
	for i <= j {
		switch {
		case i == j:
			centre, hasCentre = s[i], true
			i++
		case s[i] == s[j]:
			half = append(half, s[i])
			i++
			j--
		case lookup.At(i, j-1) >= lookup.At(i+1, j):
			j--
		default:
			i++
		}
	}

	out := make([]T, 0, lookup.At(0, n-1))
	out = append(out, half...)
	if hasCentre {
		out = append(out, centre)
	}
	for k := len(half) - 1; k >= 0; k-- {
		out = append(out, half[k])
	}

	return out
}

// IsPalindrome reports whether s reads the same in both directions.
func IsPalindrome[T comparable](s []T) bool {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		if s[l] != s[r] {
			return false
		}
	}

	return true
}

// fill builds the n×n table for a non-empty s.
func fill[T comparable](s []T) *table.Table {
	n := len(s)
	lookup := table.New(n, n)
	for i := 0; i < n; i++ {
		lookup.Set(i, i, 1)
	}

	for size := 2; size <= n; size++ {
		for i := 0; i+size <= n; i++ {
			j := i + size - 1
			switch {
			case s[i] == s[j] && size == 2:
				lookup.Set(i, j, 2)
			case s[i] == s[j]:
				lookup.Set(i, j, lookup.At(i+1, j-1)+2)
			default:
				lookup.Set(i, j, max(lookup.At(i, j-1), lookup.At(i+1, j)))
			}
		}
	}

	return lookup
}
