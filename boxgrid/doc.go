// Package boxgrid implements the locked-box grid container: a rectangular
// boolean matrix (true = locked, false = unlocked) mutated exclusively
// through the Toggle primitive.
//
// What:
//
//   - Box owns a ySize × xSize boolean grid, all-unlocked at construction.
//   - Toggle(row, col) flips every cell of row `row`, every cell of column
//     `col`, and flips (row, col) once more on top of the two sweeps.
//   - IsLocked reports whether any cell is still true.
//   - State returns a deep-copy snapshot, safe to retain and mutate.
//   - New accepts an injected *rand.Rand to shuffle the box into a random
//     locked state; without one the box stays fully unlocked.
//
// Why:
//
//   - The container is the consumed contract of the unlock solver: the
//     solver reads one State snapshot and issues Toggle calls back.
//   - Randomness is injected, never ambient, so fixtures are reproducible
//     bit-for-bit from a seed.
//
// Toggle parity:
//
//	The pivot cell is hit three times — once by the row sweep, once by the
//	column sweep, once standalone — so its net parity is a single flip,
//	the same as any other cell in the pivot's row or column.
//
// Complexity:
//
//   - Toggle:   O(ySize + xSize)
//   - IsLocked: O(ySize × xSize)
//   - State:    O(ySize × xSize)
//
// Errors:
//
//   - ErrZeroDimension: a requested dimension is < 1.
//   - ErrNonRectangular: NewFromState rows have differing lengths.
package boxgrid
