// SPDX-License-Identifier: MIT

package unlock

import (
	"errors"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/securebox/boxgrid"
	"github.com/katalvlaran/securebox/gf2"
	"github.com/katalvlaran/securebox/logger"
)

// PlanFor builds the GF(2) system for one snapshot and solves it.
//
// Unknown e = i·x + j is "issue Toggle(i, j)"; equation e' = a·x + b
// demands that cell (a, b) is flipped exactly when the snapshot shows it
// locked. The coefficient of unknown (i, j) in equation (a, b) is 1 iff
// i == a or j == b (row sweep, column sweep, and the extra pivot flip
// collapse to that pattern mod 2).
//
// Returns an empty Plan for an all-unlocked snapshot, ErrUnsolvable when
// the pattern is outside the toggle group's image, and
// boxgrid.ErrNonRectangular on ragged input. A zero-size snapshot yields
// an empty Plan: nothing is locked in a grid with no cells.
//
// Complexity: O((y·x)³ / w) time, O((y·x)² / w) memory, word size w.
func PlanFor(state [][]bool) (Plan, error) {
	y := len(state)
	if y == 0 || len(state[0]) == 0 {
		return Plan{}, nil
	}
	x := len(state[0])
	for _, row := range state {
		if len(row) != x {
			return Plan{}, boxgrid.ErrNonRectangular
		}
	}

	n := y * x
	m := gf2.NewMatrix(n, n)
	rhs := bitset.New(uint(n))
	for a := 0; a < y; a++ {
		for b := 0; b < x; b++ {
			eq := a*x + b
			for j := 0; j < x; j++ {
				m.SetBit(eq, a*x+j, true) // row sweep of any pivot in row a
			}
			for i := 0; i < y; i++ {
				m.SetBit(eq, i*x+b, true) // column sweep of any pivot in column b
			}
			rhs.SetTo(uint(eq), state[a][b])
		}
	}

	sol, rank, err := gf2.Solve(m, rhs)
	if err != nil {
		if errors.Is(err, gf2.ErrInconsistent) {
			return Plan{}, ErrUnsolvable
		}

		return Plan{}, err
	}

	rows := make([]*bitset.BitSet, y)
	for i := range rows {
		rows[i] = bitset.New(uint(x))
	}
	for e, ok := sol.NextSet(0); ok; e, ok = sol.NextSet(e + 1) {
		rows[int(e)/x].Set(e % uint(x))
	}

	return Plan{xSize: x, rows: rows, rank: rank}, nil
}

// Unlock snapshots the box once, computes the full toggle plan, applies
// it blindly through Toggle, and re-queries IsLocked for the verdict.
// There is no feedback loop and no retry: linearity guarantees the net
// effect regardless of intermediate states or application order.
//
// The returned bool follows the solver contract: true = still locked
// (failure), false = opened. An unsolvable pattern is a semantic failure,
// not an error — no toggles are issued and the verdict is "still locked".
func Unlock(box *boxgrid.Box) (locked bool, err error) {
	if box == nil {
		return true, ErrNilBox
	}
	start := time.Now()
	log := logger.Logger()
	y, x := box.Dims()

	plan, err := PlanFor(box.State())
	if err != nil {
		if errors.Is(err, ErrUnsolvable) {
			log.Warn().Int("ySize", y).Int("xSize", x).
				Msg("pattern outside toggle image; box stays locked")

			return true, nil
		}

		return true, err
	}

	for _, p := range plan.Pivots() {
		box.Toggle(p.Row, p.Col)
	}
	locked = box.IsLocked()

	log.Debug().
		Int("ySize", y).
		Int("xSize", x).
		Int("unknowns", y*x).
		Int("rank", plan.Rank()).
		Int("toggles", plan.Len()).
		Bool("locked", locked).
		Dur("took", time.Since(start)).
		Msg("unlock done")

	return locked, nil
}

// Open is the end-to-end entry point: it constructs a y × x box
// (forwarding opts, typically boxgrid.WithRand for the initial shuffle),
// runs Unlock, and returns the verdict. A zero dimension means a grid
// with no cells, which is trivially unlocked: Open reports success
// without constructing anything. Negative dimensions surface
// boxgrid.ErrZeroDimension.
func Open(y, x int, opts ...boxgrid.Option) (locked bool, err error) {
	if y == 0 || x == 0 {
		return false, nil
	}
	box, err := boxgrid.New(y, x, opts...)
	if err != nil {
		return true, err
	}

	return Unlock(box)
}
