package knapsack

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
)

// validate rejects malformed input before any table is allocated.
//
// A negative capacity is reported on its own. Otherwise every offending
// item is collected into a single errors.M, each entry wrapping one of the
// package sentinels with the item index, so errors.Is matches any of them.
//
// Complexity: O(n).
func validate(capacity int, items []Item) error {
	if capacity < 0 {
		return fmt.Errorf("capacity %d: %w", capacity, ErrNegativeCapacity)
	}

	errs := &errors.M{}
	for i, it := range items {
		if it.Weight < 0 {
			errs.Append(fmt.Errorf("items[%d]: weight %d: %w", i, it.Weight, ErrNegativeWeight))
		}
		switch {
		case math.IsNaN(it.Value) || math.IsInf(it.Value, 0):
			errs.Append(fmt.Errorf("items[%d]: value %v: %w", i, it.Value, ErrInvalidValue))
		case it.Value < 0:
			errs.Append(fmt.Errorf("items[%d]: value %v: %w", i, it.Value, ErrNegativeValue))
		}
	}

	return errs.Err()
}
