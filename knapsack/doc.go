// Package knapsack solves the 0/1 knapsack problem with dynamic programming.
//
// 🚀 What is 0/1 knapsack?
//
//	Given items, each with a weight and a value, and a knapsack that can
//	carry at most C units of weight, pick a subset of items (each item at
//	most once) that maximizes the total value without exceeding C.
//	Typical uses:
//	  • Budget allocation & project selection
//	  • Cargo / container loading
//	  • Cutting-stock and resource scheduling subproblems
//
// ✨ Key features:
//   - MaxValue: O(n·C) time, O(C) memory, a single 1-D lookup table
//   - Select:   O(n·C) time & memory, also reports which items were picked
//   - MaxValueRecursive: the naive O(2ⁿ) include/exclude recursion, kept
//     for contrast and as a test oracle on tiny inputs
//   - fail-fast validation: every malformed item is reported at once
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dynprog/knapsack"
//
//	items := []knapsack.Item{{Weight: 10, Value: 7}, {Weight: 9, Value: 8}, {Weight: 5, Value: 6}}
//	best, err := knapsack.MaxValue(15, items) // best == 14
//
// Performance:
//
//   - Time:   O(n·C), n = len(items), C = capacity
//   - Memory: O(C) (MaxValue) or O(n·C) (Select)
package knapsack
