// SPDX-License-Identifier: MIT

// Package unlock solves the locked-box puzzle: given a boxgrid.Box, it
// computes and applies a toggle sequence that drives every cell to the
// unlocked state, using only the container's public surface.
//
// What:
//
//   - PlanFor builds and solves the GF(2) linear system for one snapshot
//     and returns the toggle Plan, without touching any box.
//   - Unlock snapshots a live box once, plans, applies the plan blindly,
//     and re-queries IsLocked for the verdict.
//   - Open is the end-to-end entry point: dimensions in, verdict out.
//
// How:
//
//	Toggling pivot (i, j) flips row i, column j, and the pivot once more,
//	so the coefficient of unknown "toggle (i, j)" in the equation for cell
//	(a, b) is 1 exactly when i == a or j == b (at the pivot itself the
//	three hits collapse to one, 1+1+1 ≡ 1 mod 2). One unknown per cell and
//	one equation per cell give a square (y·x) × (y·x) system for every
//	rectangle, so non-square grids are solved the same way as square ones.
//
// Single-shot blind application:
//
//	The plan is computed from ONE snapshot and applied without re-reading
//	intermediate states. That is sound only because toggles are a
//	commuting family of involutions over GF(2) — their net effect is
//	order-independent — and it is why this is not a greedy search.
//
// Failure:
//
//	The only failure is semantic: the verdict stays "locked" when the
//	observed pattern is outside the toggle group's image (PlanFor then
//	reports ErrUnsolvable and Unlock issues no toggles). States produced
//	by shuffling a box are always inside the image, hence always opened.
//
// Complexity: O((y·x)³ / w) time for the elimination, word size w.
package unlock
