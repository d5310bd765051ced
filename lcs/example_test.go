package lcs_test

import (
	"fmt"

	"github.com/katalvlaran/dynprog/lcs"
)

// ExampleLength compares two short words.
func ExampleLength() {
	fmt.Println(lcs.Length("WHOWEEKLY", "HOWONLY"))
	fmt.Println(lcs.Length("CATSINSPACETWO", "DOGSPACEWHO"))
	// Output:
	// 5
	// 7
}

// ExampleCompute recovers one longest common subsequence.
//
// Scenario:
//
//	a = ABCD, b = AXBXDX → A, B and D appear in both, in order.
func ExampleCompute() {
	opts := lcs.DefaultOptions()
	opts.ReturnSubsequence = true

	res, err := lcs.Compute([]rune("ABCD"), []rune("AXBXDX"), &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("length=%d lcs=%s\n", res.Length, string(res.Subsequence))
	// Output:
	// length=3 lcs=ABD
}
