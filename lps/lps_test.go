package lps_test

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/dynprog/lcs"
	"github.com/katalvlaran/dynprog/lps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isSubsequence reports whether sub can be obtained from s by deletions.
func isSubsequence[T comparable](sub, s []T) bool {
	k := 0
	for i := 0; i < len(s) && k < len(sub); i++ {
		if s[i] == sub[k] {
			k++
		}
	}
	return k == len(sub)
}

// randomString draws n letters from alphabet.
func randomString(rng *rand.Rand, n int, alphabet string) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(out)
}

// TestLength_Literals checks the reference cases.
func TestLength_Literals(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"BANANO", 3},
		{"TACOCAT", 7},
		{"BxAoNxAoNxA", 5},
		{"MAXDYAM", 5},
		{"ABBDBCACB", 5},
		{"AB", 1},
		{"AA", 2},
		{"Z", 1},
		{"", 0},
	}

	for _, tc := range cases {
		t.Run(tc.s, func(t *testing.T) {
			assert.Equal(t, tc.want, lps.Length(tc.s))
		})
	}
}

// TestLength_RepeatedRune verifies a run of n identical runes yields n.
func TestLength_RepeatedRune(t *testing.T) {
	for n := 1; n <= 12; n++ {
		assert.Equal(t, n, lps.Length(strings.Repeat("é", n)), "n=%d", n)
	}
}

// TestLength_Properties checks bounds, the palindrome equivalence and
// agreement with LCS(s, reverse(s)).
func TestLength_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for round := 0; round < 300; round++ {
		s := []rune(randomString(rng, rng.Intn(14), "AB"))
		got := lps.LengthOf(s)

		if len(s) == 0 {
			assert.Equal(t, 0, got)
			continue
		}
		assert.GreaterOrEqual(t, got, 1)
		assert.LessOrEqual(t, got, len(s))
		assert.Equal(t, lps.IsPalindrome(s), got == len(s), "palindrome iff full length for %q", string(s))

		rev := slices.Clone(s)
		slices.Reverse(rev)
		assert.Equal(t, lcs.LengthOf(s, rev), got, "LPS == LCS(s, reverse(s)) for %q", string(s))
	}
}

// TestTable_Matrices compares the full subproblem matrices.
func TestTable_Matrices(t *testing.T) {
	banano := [][]int{
		{1, 1, 1, 3, 3, 3},
		{0, 1, 1, 3, 3, 3},
		{0, 0, 1, 1, 3, 3},
		{0, 0, 0, 1, 1, 1},
		{0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0, 1},
	}
	assert.Equal(t, banano, lps.Table([]rune("BANANO")))

	tacocat := [][]int{
		{1, 1, 1, 1, 3, 5, 7},
		{0, 1, 1, 1, 3, 5, 5},
		{0, 0, 1, 1, 3, 3, 3},
		{0, 0, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 1, 1, 1},
		{0, 0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 0, 0, 1},
	}
	assert.Equal(t, tacocat, lps.Table([]rune("TACOCAT")))

	assert.Empty(t, lps.Table([]rune("")))
}

// TestSubsequence_Literals checks recovered palindromes for fixed inputs.
func TestSubsequence_Literals(t *testing.T) {
	assert.Equal(t, "ANA", string(lps.Subsequence([]rune("BANANO"))))
	assert.Equal(t, "TACOCAT", string(lps.Subsequence([]rune("TACOCAT"))))
	assert.Equal(t, "Q", string(lps.Subsequence([]rune("Q"))))
	assert.Nil(t, lps.Subsequence([]rune{}))
}

// TestSubsequence_Valid verifies the recovered subsequence is a palindrome
// of maximal length that occurs in the input.
func TestSubsequence_Valid(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for round := 0; round < 200; round++ {
		s := []rune(randomString(rng, 1+rng.Intn(15), "ABC"))
		sub := lps.Subsequence(s)

		require.Len(t, sub, lps.LengthOf(s), "input %q", string(s))
		assert.True(t, lps.IsPalindrome(sub), "%q is not a palindrome", string(sub))
		assert.True(t, isSubsequence(sub, s), "%q not in %q", string(sub), string(s))
	}
}

// TestIsPalindrome covers odd, even and empty inputs.
func TestIsPalindrome(t *testing.T) {
	assert.True(t, lps.IsPalindrome([]rune("")))
	assert.True(t, lps.IsPalindrome([]rune("MADAM")))
	assert.True(t, lps.IsPalindrome([]int{1, 2, 2, 1}))
	assert.False(t, lps.IsPalindrome([]rune("BANANO")))
}
