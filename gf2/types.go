// SPDX-License-Identifier: MIT

package gf2

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for gf2 operations.
var (
	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("gf2: matrix must be non-nil")
	// ErrNilVector indicates a nil *bitset.BitSet operand.
	ErrNilVector = errors.New("gf2: vector must be non-nil")
	// ErrDimensionMismatch indicates the right-hand side length does not
	// equal the matrix row count.
	ErrDimensionMismatch = errors.New("gf2: right-hand side length must equal matrix rows")
	// ErrInconsistent indicates the linear system admits no solution.
	ErrInconsistent = errors.New("gf2: system is inconsistent")
)

// Panic messages for caller contract violations (no magic strings).
const (
	panicNegativeDims = "gf2: NewMatrix: rows and cols must be non-negative"
	panicIndexRange   = "gf2: index out of range"
)

// Matrix is a dense rows × cols matrix over GF(2). Each row is a packed
// bit-vector, so XOR-ing one row into another touches whole machine words.
// The zero value is an empty 0×0 matrix; construct via NewMatrix.
type Matrix struct {
	rows, cols int
	bits       []*bitset.BitSet // bits[r].Test(c) == entry (r, c)
}
