package knapsack

import "errors"

// Item is an immutable (weight, value) pair. It has no identity beyond
// its two fields.
type Item struct {
	Weight int     // non-negative weight units
	Value  float64 // non-negative, finite value
}

// Selection is the outcome of Select: the optimal value together with the
// chosen item indices (ascending) and their combined weight.
type Selection struct {
	Value   float64
	Indices []int
	Weight  int
}

var (
	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeWeight indicates an item with Weight < 0.
	ErrNegativeWeight = errors.New("knapsack: item weight must be non-negative")

	// ErrNegativeValue indicates an item with Value < 0.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")

	// ErrInvalidValue indicates an item Value that is NaN or ±Inf.
	ErrInvalidValue = errors.New("knapsack: item value must be finite")
)
