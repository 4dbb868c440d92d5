// SPDX-License-Identifier: MIT

// Package gf2 provides dense matrices and linear solving over GF(2),
// the two-element field where addition is XOR and multiplication is AND.
//
// What:
//
//   - Matrix: a rows × cols bit matrix, one packed bit-vector per row
//     (github.com/bits-and-blooms/bitset), so row elimination runs
//     word-parallel instead of cell-by-cell.
//   - Solve: Gaussian elimination with partial pivot search, row swaps,
//     forward elimination, and back-substitution. Columns without a pivot
//     are skipped; the matching free variables resolve to zero.
//
// Why:
//
//   - Toggle-style puzzles, parity constraints, and XOR equation systems
//     all reduce to M·x = b over GF(2). Packing rows into machine words
//     makes elimination O(r×c×min(r,c)/w) for word size w.
//
// Determinism:
//
//   - Pivot choice is first-hit from the top, loop orders are fixed, and
//     there is no randomness anywhere: identical inputs always produce
//     identical solutions.
//
// Errors:
//
//   - ErrNilMatrix, ErrNilVector: nil operands.
//   - ErrDimensionMismatch: right-hand side length differs from row count.
//   - ErrInconsistent: the system has no solution (a zero row with a
//     non-zero right-hand-side bit survives elimination).
package gf2
