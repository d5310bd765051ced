// Package dynprog is a small collection of classic dynamic-programming
// solvers over in-memory sequences.
//
// 🚀 What is inside?
//
//	Three independent, stateless algorithms sharing one technique:
//	bottom-up tabulation, where every table cell is computed once from
//	already-computed neighbours and never revisited.
//		• knapsack/ - 0/1 knapsack maximum value (1-D table, O(n·C))
//		• lcs/      - longest common subsequence length (2-D table, O(n·m))
//		• lps/      - longest palindromic subsequence length (triangular table, O(n²))
//
// ✨ Why this layout?
//
//   - Pure functions – no global state, safe to call from any goroutine
//   - Fail fast – malformed knapsack input returns sentinel errors, never a wrong number
//   - Generic – LCS and LPS work on any comparable token, not only runes
//
// Outer surfaces live apart from the algorithms:
//
//	cmd/dynprog/   - CLI (knapsack, lcs, lps, serve)
//	internal/api/  - HTTP endpoints + Prometheus metrics
//	internal/config/ - DYNPROG_* environment / .env settings
//	internal/table/  - dense int table shared by lcs and lps
//
// Quick example:
//
//	lcs.Length("WHOWEEKLY", "HOWONLY") // 5
//	lps.Length("TACOCAT")             // 7
package dynprog
