// Package lcs computes the Longest Common Subsequence (LCS) of two
// sequences with bottom-up dynamic programming.
//
// 🚀 What is LCS?
//
//	A subsequence keeps the relative order of elements but need not be
//	contiguous: ABD is a subsequence of AXBXDX. The LCS of two sequences
//	is the longest sequence that is a subsequence of both. It is the
//	backbone of:
//	  • diff tools & version control merges
//	  • plagiarism / text-similarity scoring
//	  • DNA and protein sequence comparison
//
// ✨ Key features:
//   - Length / LengthOf: LCS length over strings (runes) or any comparable tokens
//   - full-matrix mode: exact O(N·M) time & memory, supports recovering an LCS
//   - two-rows mode: O(min(N,M)) memory when only the length is needed
//   - on-demand subsequence (ReturnSubsequence=true)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dynprog/lcs"
//
//	n := lcs.Length("WHOWEEKLY", "HOWONLY") // 5
//
//	opts := lcs.DefaultOptions()
//	opts.ReturnSubsequence = true
//	res, err := lcs.Compute([]rune("ABCD"), []rune("AXBXDX"), &opts)
//	// res.Length == 3, string(res.Subsequence) == "ABD"
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
package lcs
