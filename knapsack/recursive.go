package knapsack

// MaxValueRecursive is the naive include/exclude recursion.
//
// For the last unconsidered item it evaluates both options, taking it
// (when it fits) and skipping it, and returns the better of the two. Both
// branches are explored for every item, so the running time is O(2ⁿ);
// there is no memoization. It exists for contrast with MaxValue and as an
// independent oracle in tests. Use MaxValue for real inputs.
//
// Input validation and results match MaxValue exactly, including the
// treatment of zero-weight items.
func MaxValueRecursive(capacity int, items []Item) (float64, error) {
	if err := validate(capacity, items); err != nil {
		return 0, err
	}

	return recurse(capacity, items, len(items)-1), nil
}

func recurse(capacity int, items []Item, last int) float64 {
	if last < 0 {
		return 0
	}

	skip := recurse(capacity, items, last-1)
	if items[last].Weight > capacity {
		return skip
	}
	take := items[last].Value + recurse(capacity-items[last].Weight, items, last-1)
	if take > skip {
		return take
	}

	return skip
}
