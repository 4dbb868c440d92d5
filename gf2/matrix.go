// SPDX-License-Identifier: MIT

package gf2

import "github.com/bits-and-blooms/bitset"

// NewMatrix allocates a zero rows × cols matrix over GF(2).
// Panics if rows or cols is negative (programmer error).
// Complexity: O(rows × cols / w) memory for word size w.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(panicNegativeDims)
	}
	bits := make([]*bitset.BitSet, rows)
	for r := range bits {
		bits[r] = bitset.New(uint(cols))
	}

	return &Matrix{rows: rows, cols: cols, bits: bits}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Bit returns the entry at (r, c). Panics on out-of-range indices.
func (m *Matrix) Bit(r, c int) bool {
	m.check(r, c)

	return m.bits[r].Test(uint(c))
}

// SetBit sets the entry at (r, c) to v. Panics on out-of-range indices.
func (m *Matrix) SetBit(r, c int, v bool) {
	m.check(r, c)
	m.bits[r].SetTo(uint(c), v)
}

// SwapRows exchanges rows i and j in place.
// Complexity: O(1) — only the row headers move.
func (m *Matrix) SwapRows(i, j int) {
	m.checkRow(i)
	m.checkRow(j)
	m.bits[i], m.bits[j] = m.bits[j], m.bits[i]
}

// XorRows folds row src into row dst: dst ^= src, word-parallel.
// Complexity: O(cols / w).
func (m *Matrix) XorRows(dst, src int) {
	m.checkRow(dst)
	m.checkRow(src)
	m.bits[dst].InPlaceSymmetricDifference(m.bits[src])
}

// Clone returns a deep copy of the matrix.
// Complexity: O(rows × cols / w).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, bits: make([]*bitset.BitSet, m.rows)}
	for r, row := range m.bits {
		out.bits[r] = row.Clone()
	}

	return out
}

func (m *Matrix) check(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(panicIndexRange)
	}
}

func (m *Matrix) checkRow(r int) {
	if r < 0 || r >= m.rows {
		panic(panicIndexRange)
	}
}
