// Package securebox is a small toolkit for the grid-unlocking puzzle:
// a rectangular boolean grid (true = locked) that can only be mutated
// through a row/column toggle primitive, and a solver that drives the
// whole grid to the unlocked state.
//
// What lives where:
//
//	boxgrid/     — the grid container: Toggle, IsLocked, State snapshots,
//	               and a seedable random shuffle
//	gf2/         — bit-packed matrices over GF(2) and Gaussian elimination
//	               with back-substitution
//	unlock/      — the solver: models every toggle as a linear map over
//	               GF(2), solves for a toggle plan from one snapshot, and
//	               applies it through the container's public surface
//	cmd/openbox/ — command-line driver: height and width in, verdict out
//
// Why GF(2)?
//
//	Each toggle flips a fixed set of cells, flipping is XOR, and XOR is
//	commutative and associative. Every toggle is therefore its own inverse
//	and toggle sequences compose linearly, which turns "which toggles open
//	the box" into a linear system over the two-element field.
//
// Quick start:
//
//	rng := rand.New(rand.NewSource(42))
//	locked, err := unlock.Open(6, 6, boxgrid.WithRand(rng))
//	// locked == false: the box is open.
package securebox
