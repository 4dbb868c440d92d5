// SPDX-License-Identifier: MIT

package unlock

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for unlock operations.
var (
	// ErrNilBox indicates a nil *boxgrid.Box was passed to Unlock.
	ErrNilBox = errors.New("unlock: box must be non-nil")
	// ErrUnsolvable indicates the observed pattern is outside the toggle
	// group's image: no toggle sequence cancels it.
	ErrUnsolvable = errors.New("unlock: no toggle sequence cancels the observed state")
)

// Pivot addresses one toggle invocation: Toggle(Row, Col).
type Pivot struct {
	Row, Col int
}

// Plan is the solved decision vector, held per grid row as a packed set
// of pivot columns: rows[i].Test(j) means "issue Toggle(i, j)". The zero
// value is an empty plan. Plans are immutable once returned by PlanFor.
type Plan struct {
	xSize int
	rows  []*bitset.BitSet
	rank  int
}

// Len returns the number of toggles the plan issues.
func (p Plan) Len() int {
	n := 0
	for _, row := range p.rows {
		n += int(row.Count())
	}

	return n
}

// Empty reports whether the plan issues no toggles at all.
func (p Plan) Empty() bool { return p.Len() == 0 }

// Rank returns the rank of the linear system the plan was solved from.
func (p Plan) Rank() int { return p.rank }

// Pivots flattens the plan into (row, col) pairs in row-major order.
// Application order is irrelevant — toggles commute — but the flattening
// is deterministic so two equal plans always enumerate identically.
func (p Plan) Pivots() []Pivot {
	out := make([]Pivot, 0, p.Len())
	for i, row := range p.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out = append(out, Pivot{Row: i, Col: int(j)})
		}
	}

	return out
}
