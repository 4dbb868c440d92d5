// SPDX-License-Identifier: MIT

package gf2_test

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/securebox/gf2"
)

// vec builds a bitset of the given length from bool literals.
func vec(bits ...bool) *bitset.BitSet {
	v := bitset.New(uint(len(bits)))
	for i, b := range bits {
		v.SetTo(uint(i), b)
	}

	return v
}

// mulVec computes m·x over GF(2) the slow way, for verification.
func mulVec(m *gf2.Matrix, x *bitset.BitSet) *bitset.BitSet {
	out := bitset.New(uint(m.Rows()))
	for r := 0; r < m.Rows(); r++ {
		sum := false
		for c := 0; c < m.Cols(); c++ {
			if m.Bit(r, c) && x.Test(uint(c)) {
				sum = !sum
			}
		}
		out.SetTo(uint(r), sum)
	}

	return out
}

func TestSolve_Validation(t *testing.T) {
	m := gf2.NewMatrix(2, 2)
	_, _, err := gf2.Solve(nil, vec(false, false))
	require.ErrorIs(t, err, gf2.ErrNilMatrix)

	_, _, err = gf2.Solve(m, nil)
	require.ErrorIs(t, err, gf2.ErrNilVector)

	_, _, err = gf2.Solve(m, vec(false, false, false))
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

func TestSolve_Identity(t *testing.T) {
	m := fill(t, [][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	})
	rhs := vec(true, false, true)
	x, rank, err := gf2.Solve(m, rhs)
	require.NoError(t, err)
	require.Equal(t, 3, rank)
	require.True(t, rhs.Equal(x))
}

func TestSolve_UpperTriangular(t *testing.T) {
	// x0 ⊕ x1 = 1, x1 = 1 → x0 = 0.
	m := fill(t, [][]bool{{true, true}, {false, true}})
	x, rank, err := gf2.Solve(m, vec(true, true))
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.False(t, x.Test(0))
	require.True(t, x.Test(1))
}

func TestSolve_RowSwapNeeded(t *testing.T) {
	// Leading zero forces a pivot swap before elimination.
	m := fill(t, [][]bool{{false, true}, {true, true}})
	rhs := vec(true, false)
	x, rank, err := gf2.Solve(m, rhs)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.True(t, rhs.Equal(mulVec(m, x)))
}

func TestSolve_FreeColumnResolvesToZero(t *testing.T) {
	// Second column has no pivot below the first row's elimination; the
	// free variable must stay zero and the system still verify.
	m := fill(t, [][]bool{{true, true}, {false, false}})
	rhs := vec(true, false)
	x, rank, err := gf2.Solve(m, rhs)
	require.NoError(t, err)
	require.Equal(t, 1, rank)
	require.True(t, x.Test(0))
	require.False(t, x.Test(1))
	require.True(t, rhs.Equal(mulVec(m, x)))
}

func TestSolve_Inconsistent(t *testing.T) {
	// Identical rows with different right-hand sides: 0 = 1 after
	// elimination.
	m := fill(t, [][]bool{{true, true}, {true, true}})
	_, rank, err := gf2.Solve(m, vec(true, false))
	require.ErrorIs(t, err, gf2.ErrInconsistent)
	require.Equal(t, 1, rank)
}

func TestSolve_OverdeterminedConsistent(t *testing.T) {
	m := fill(t, [][]bool{
		{true, false},
		{false, true},
		{true, true},
	})
	rhs := vec(true, true, false)
	x, rank, err := gf2.Solve(m, rhs)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.True(t, rhs.Equal(mulVec(m, x)))
}

func TestSolve_DoesNotMutateOperands(t *testing.T) {
	cells := [][]bool{{false, true}, {true, true}}
	m := fill(t, cells)
	rhs := vec(true, false)
	_, _, err := gf2.Solve(m, rhs)
	require.NoError(t, err)
	for r := range cells {
		for c := range cells[r] {
			require.Equal(t, cells[r][c], m.Bit(r, c), "matrix mutated at (%d,%d)", r, c)
		}
	}
	require.True(t, vec(true, false).Equal(rhs), "rhs mutated")
}

func TestSolve_RandomSystemsVerify(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(24)
		m := gf2.NewMatrix(n, n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				m.SetBit(r, c, rng.Intn(2) == 1)
			}
		}
		// Build rhs from a known solution so the system is consistent.
		want := bitset.New(uint(n))
		for c := 0; c < n; c++ {
			want.SetTo(uint(c), rng.Intn(2) == 1)
		}
		rhs := mulVec(m, want)

		x, _, err := gf2.Solve(m, rhs)
		require.NoError(t, err, "trial %d (n=%d)", trial, n)
		require.True(t, rhs.Equal(mulVec(m, x)), "trial %d (n=%d): m·x != rhs", trial, n)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	m := fill(t, [][]bool{
		{true, true, false},
		{false, true, true},
		{true, false, true},
	})
	rhs := vec(true, false, true)
	x1, _, err1 := gf2.Solve(m, rhs)
	x2, _, err2 := gf2.Solve(m, rhs)
	require.Equal(t, err1, err2)
	if err1 == nil {
		require.True(t, x1.Equal(x2))
	}
}
