package lcs

import "errors"

// MemoryMode controls how Compute stores its DP table.
//
//   - FullMatrix - keep the entire (n+1)x(m+1) table.
//     Allows the length and recovery of one LCS. Memory: O(n·m).
//
//   - TwoRows - keep only the previous and current row.
//     Memory: O(min(n, m)); the subsequence cannot be recovered.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support subsequence recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling pair of rows, length only.
	TwoRows
)

// Options configures Compute.
//
// Fields:
//   - MemoryMode        - FullMatrix or TwoRows storage.
//   - ReturnSubsequence - if true, backtrack and return one LCS.
//     Requires MemoryMode=FullMatrix.
type Options struct {
	MemoryMode        MemoryMode
	ReturnSubsequence bool
}

// DefaultOptions returns FullMatrix storage without subsequence recovery.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}

// Result is the outcome of Compute. Subsequence is nil unless requested.
type Result[T comparable] struct {
	Length      int
	Subsequence []T
}

var (
	// ErrSubsequenceNeedsMatrix indicates ReturnSubsequence was requested
	// without FullMatrix storage.
	ErrSubsequenceNeedsMatrix = errors.New("lcs: ReturnSubsequence requires MemoryMode=FullMatrix")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("lcs: unknown memory mode")
)
