// SPDX-License-Identifier: MIT

package gf2

import "github.com/bits-and-blooms/bitset"

// Solve computes an x with m·x = rhs over GF(2) via Gaussian elimination
// with back-substitution. Operands are not mutated; elimination runs on
// working copies and a fresh solution vector of length m.Cols() is
// returned together with the rank of m.
//
// Procedure, column by column:
//
//  1. Find the first row at index ≥ the current pivot position whose bit
//     in this column is set. No such row — the column is skipped and its
//     variable is left free (it resolves to zero).
//  2. Swap that row (and its right-hand-side bit) into pivot position.
//  3. XOR the pivot row into every lower row that has a set bit in this
//     column, folding the right-hand-side bits along.
//  4. After forward elimination, back-substitute bottom-up: each pivot
//     variable is its right-hand-side bit XOR the already-resolved
//     variables its row still references.
//
// Errors:
//
//   - ErrNilMatrix / ErrNilVector on nil operands.
//   - ErrDimensionMismatch when rhs.Len() != m.Rows().
//   - ErrInconsistent when elimination leaves a zero row whose
//     right-hand-side bit is set: no x satisfies the system.
//
// Determinism: first-hit pivot search and fixed loop orders; identical
// inputs always yield the identical solution vector.
//
// Complexity: O(rows × cols × min(rows, cols) / w) time for word size w,
// O(rows × cols / w) extra memory.
func Solve(m *Matrix, rhs *bitset.BitSet) (x *bitset.BitSet, rank int, err error) {
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	if rhs == nil {
		return nil, 0, ErrNilVector
	}
	if rhs.Len() != uint(m.rows) {
		return nil, 0, ErrDimensionMismatch
	}

	work := m.Clone()
	r := rhs.Clone()

	// Forward elimination to row-echelon form. pivotCols[k] records which
	// column the k-th pivot row eliminates, so back-substitution stays
	// correct on rank-deficient and rectangular systems.
	pivotCols := make([]int, 0, min(work.rows, work.cols))
	for col := 0; col < work.cols && len(pivotCols) < work.rows; col++ {
		pos := len(pivotCols)
		sel := -1
		for row := pos; row < work.rows; row++ {
			if work.bits[row].Test(uint(col)) {
				sel = row
				break
			}
		}
		if sel < 0 {
			continue // free column: no constraint from this variable
		}
		if sel != pos {
			work.SwapRows(sel, pos)
			swapBits(r, uint(sel), uint(pos))
		}
		for row := pos + 1; row < work.rows; row++ {
			if work.bits[row].Test(uint(col)) {
				work.XorRows(row, pos)
				if r.Test(uint(pos)) {
					r.SetTo(uint(row), !r.Test(uint(row)))
				}
			}
		}
		pivotCols = append(pivotCols, col)
	}
	rank = len(pivotCols)

	// Every row below the last pivot is all-zero; a set right-hand-side
	// bit there means 0 = 1 and the system has no solution.
	for row := rank; row < work.rows; row++ {
		if r.Test(uint(row)) {
			return nil, rank, ErrInconsistent
		}
	}

	// Back-substitution, last pivot first. Free variables stay zero, so
	// the parity of row∩x over the columns right of the pivot is exactly
	// the correction to fold into the right-hand-side bit. The pivot
	// column itself is not yet set in x, so whole-row intersection is safe.
	x = bitset.New(uint(work.cols))
	for k := rank - 1; k >= 0; k-- {
		v := r.Test(uint(k))
		if work.bits[k].IntersectionCardinality(x)&1 == 1 {
			v = !v
		}
		x.SetTo(uint(pivotCols[k]), v)
	}

	return x, rank, nil
}

// swapBits exchanges bits i and j of v in place.
func swapBits(v *bitset.BitSet, i, j uint) {
	bi, bj := v.Test(i), v.Test(j)
	v.SetTo(i, bj)
	v.SetTo(j, bi)
}
