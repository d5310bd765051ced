package knapsack

// MaxValue - 0/1 knapsack, bottom-up DP over a 1-D lookup table.
//
// Description:
//
//	lookup[c] holds the best value reachable with capacity c using the
//	items processed so far. Each item is folded in by scanning capacities
//	from high to low, so lookup[c-w] still refers to the table *before*
//	this item was considered.
//
// Algorithm Outline:
//  1. Allocate lookup[0..C], all zero.
//  2. For each item (w, v):
//     For c = C down to w:
//     lookup[c] = max(lookup[c], lookup[c-w] + v)
//  3. Return lookup[C].
//
// The descending scan enforces the 0/1 constraint; an ascending scan would
// let the same item be reused within one pass (unbounded knapsack).
// Items heavier than C never enter the inner loop.
//
// Zero-weight items are free: they are counted at every capacity,
// including C = 0.
//
// Complexity:
//
//	Time   = O(n·C)
//	Memory = O(C)
//
// Errors:
//   - ErrNegativeCapacity - capacity < 0.
//   - ErrNegativeWeight, ErrNegativeValue, ErrInvalidValue - per item,
//     aggregated (see validate).
func MaxValue(capacity int, items []Item) (float64, error) {
	if err := validate(capacity, items); err != nil {
		return 0, err
	}

	lookup := make([]float64, capacity+1)
	for _, it := range items {
		for c := capacity; c >= it.Weight; c-- {
			if take := lookup[c-it.Weight] + it.Value; take > lookup[c] {
				lookup[c] = take
			}
		}
	}

	return lookup[capacity], nil
}

// Select solves the same problem as MaxValue but keeps the full
// (n+1)×(C+1) table so the chosen items can be recovered.
//
// Row i of the table covers items[0:i]. Backtracking walks rows from n to
// 1: whenever a row improves on the one above at the current capacity,
// item i-1 was taken and the capacity shrinks by its weight.
//
// Selection.Value always equals MaxValue(capacity, items). When several
// subsets tie, an item is kept only if it strictly improves on the rows
// above it, so earlier items win ties. Indices are in ascending order.
//
// Complexity: O(n·C) time and memory.
func Select(capacity int, items []Item) (Selection, error) {
	if err := validate(capacity, items); err != nil {
		return Selection{}, err
	}

	n := len(items)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, capacity+1)
	}

	for i := 1; i <= n; i++ {
		w, v := items[i-1].Weight, items[i-1].Value
		prev, curr := dp[i-1], dp[i]
		for c := 0; c <= capacity; c++ {
			curr[c] = prev[c]
			if w <= c {
				if take := prev[c-w] + v; take > curr[c] {
					curr[c] = take
				}
			}
		}
	}

	sel := Selection{Value: dp[n][capacity]}
	c := capacity
	for i := n; i >= 1; i-- {
		if dp[i][c] > dp[i-1][c] {
			sel.Indices = append(sel.Indices, i-1)
			sel.Weight += items[i-1].Weight
			c -= items[i-1].Weight
		}
	}
	// reverse in-place to ascending index order
	for l, r := 0, len(sel.Indices)-1; l < r; l, r = l+1, r-1 {
		sel.Indices[l], sel.Indices[r] = sel.Indices[r], sel.Indices[l]
	}

	return sel, nil
}
