package lps_test

import (
	"testing"

	"github.com/katalvlaran/dynprog/lps"
)

// benchInput builds a predictable rune sequence of length n.
func benchInput(n int) []rune {
	s := make([]rune, n)
	for k := range s {
		s[k] = rune('A' + k%5)
	}
	return s
}

// BenchmarkLPS_Small benchmarks a 64-rune input.
func BenchmarkLPS_Small(b *testing.B) {
	s := benchInput(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lps.LengthOf(s)
	}
}

// BenchmarkLPS_Medium benchmarks a 1000-rune input.
func BenchmarkLPS_Medium(b *testing.B) {
	s := benchInput(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lps.LengthOf(s)
	}
}

// BenchmarkLPS_Subsequence benchmarks recovery on a 1000-rune input.
func BenchmarkLPS_Subsequence(b *testing.B) {
	s := benchInput(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lps.Subsequence(s)
	}
}
