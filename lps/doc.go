// Package lps computes the Longest Palindromic Subsequence (LPS) of a
// single sequence.
//
// A palindrome reads the same forwards and backwards (MADAM). The LPS is
// the longest subsequence, not necessarily contiguous, with that
// property: for BxAoNxAoNxA it is ANANA (length 5), for BANANO it is
// NAN (length 3).
//
// The solver fills an n×n table over substring bounds (start ≤ end) in
// order of increasing substring length; the top-right cell holds the
// answer. Only the upper triangle is meaningful, the lower one stays 0.
//
//	Time:   O(n²)
//	Memory: O(n²)
//
// Empty input is special-cased to 0, since the table has no top-right
// cell to read.
package lps
