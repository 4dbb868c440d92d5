package boxgrid

// New constructs an all-unlocked y × x Box and, when WithRand is given,
// shuffles it with random toggles so it starts in a reachable locked state.
// Returns ErrZeroDimension if either dimension is < 1.
// Complexity: O(y×x + spins×(y+x)) time, O(y×x) memory.
func New(y, x int, opts ...Option) (*Box, error) {
	if y < 1 || x < 1 {
		return nil, ErrZeroDimension
	}
	cells := make([][]bool, y)
	for i := range cells {
		cells[i] = make([]bool, x)
	}
	b := &Box{ySize: y, xSize: x, cells: cells}

	o := gatherOptions(opts...)
	if o.rng != nil {
		spins := o.spins
		if spins == unsetSpins {
			spins = o.rng.Intn(DefaultMaxSpins)
		}
		for t := spins; t > 0; t-- {
			b.Toggle(o.rng.Intn(y), o.rng.Intn(x))
		}
	}

	return b, nil
}

// NewFromState constructs a Box holding a deep copy of the given cells.
// Returns ErrZeroDimension if state has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(y×x) time and memory.
func NewFromState(state [][]bool) (*Box, error) {
	if len(state) == 0 || len(state[0]) == 0 {
		return nil, ErrZeroDimension
	}
	y, x := len(state), len(state[0])
	cells := make([][]bool, y)
	for i, row := range state {
		if len(row) != x {
			return nil, ErrNonRectangular
		}
		cells[i] = make([]bool, x)
		copy(cells[i], row)
	}

	return &Box{ySize: y, xSize: x, cells: cells}, nil
}

// Dims returns the grid height and width.
func (b *Box) Dims() (y, x int) { return b.ySize, b.xSize }

// InBounds reports whether (row, col) lies within the grid.
func (b *Box) InBounds(row, col int) bool {
	return row >= 0 && row < b.ySize && col >= 0 && col < b.xSize
}

// Toggle flips the pivot cell (row, col), then every cell in row `row`,
// then every cell in column `col`. The pivot ends up flipped three times,
// i.e. a single net flip. Applying the same Toggle twice restores the grid.
// Panics if the pivot is out of range — that is a caller contract
// violation, not a runtime condition.
// Complexity: O(ySize + xSize).
func (b *Box) Toggle(row, col int) {
	if !b.InBounds(row, col) {
		panic(panicToggleOutOfRange)
	}
	b.cells[row][col] = !b.cells[row][col]
	for j := 0; j < b.xSize; j++ {
		b.cells[row][j] = !b.cells[row][j]
	}
	for i := 0; i < b.ySize; i++ {
		b.cells[i][col] = !b.cells[i][col]
	}
}

// IsLocked reports whether any cell is still locked (true).
// Complexity: O(ySize × xSize).
func (b *Box) IsLocked() bool {
	for _, row := range b.cells {
		for _, c := range row {
			if c {
				return true
			}
		}
	}

	return false
}

// State returns a deep-copy snapshot of the grid. The caller may retain
// and mutate it freely; the live Box is unaffected.
// Complexity: O(ySize × xSize).
func (b *Box) State() [][]bool {
	out := make([][]bool, b.ySize)
	for i, row := range b.cells {
		out[i] = make([]bool, b.xSize)
		copy(out[i], row)
	}

	return out
}
