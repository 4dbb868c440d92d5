// SPDX-License-Identifier: MIT

package gf2_test

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/securebox/gf2"
)

// ExampleSolve solves the two-equation XOR system
//
//	x0 ⊕ x1 = 1
//	     x1 = 1
func ExampleSolve() {
	m := gf2.NewMatrix(2, 2)
	m.SetBit(0, 0, true)
	m.SetBit(0, 1, true)
	m.SetBit(1, 1, true)

	rhs := bitset.New(2)
	rhs.Set(0)
	rhs.Set(1)

	x, rank, err := gf2.Solve(m, rhs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("rank:", rank)
	fmt.Println("x0:", x.Test(0))
	fmt.Println("x1:", x.Test(1))
	// Output:
	// rank: 2
	// x0: false
	// x1: true
}
