package boxgrid

import (
	"errors"
	"math/rand"
)

// Sentinel errors for boxgrid operations.
var (
	// ErrZeroDimension indicates a requested dimension is zero or negative.
	ErrZeroDimension = errors.New("boxgrid: dimensions must be at least 1×1")
	// ErrNonRectangular indicates NewFromState rows of differing lengths.
	ErrNonRectangular = errors.New("boxgrid: all rows must have the same length")
)

// Panic messages for caller contract violations (no magic strings).
const (
	panicToggleOutOfRange = "boxgrid: Toggle: pivot out of range"
	panicNilRand          = "boxgrid: WithRand: rng must be non-nil"
	panicNegativeSpins    = "boxgrid: WithSpins: n must be non-negative"
)

// DefaultMaxSpins bounds the shuffle length drawn from the injected RNG
// when WithSpins is not given: the spin count is rng.Intn(DefaultMaxSpins).
const DefaultMaxSpins = 1000

// unsetSpins marks "derive the spin count from the RNG" in options.
const unsetSpins = -1

// Box is a mutable ySize × xSize boolean grid. The zero value is unusable;
// construct via New or NewFromState. Box is not safe for concurrent use —
// a solve invocation owns it exclusively for its whole lifetime.
type Box struct {
	ySize, xSize int
	cells        [][]bool
}

// Option configures New. Constructors panic only on nonsensical values
// (programmer error); all runtime conditions surface as errors from New.
type Option func(*options)

type options struct {
	rng   *rand.Rand // nil means no shuffle
	spins int        // unsetSpins means rng-derived count
}

// WithRand injects the random source used to shuffle the box into an
// initial locked state. Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = rng }
}

// WithSpins fixes the number of random toggles applied during the shuffle.
// It has no effect unless WithRand is also given (no RNG, no shuffle).
// Panics if n is negative.
func WithSpins(n int) Option {
	if n < 0 {
		panic(panicNegativeSpins)
	}

	return func(o *options) { o.spins = n }
}

func gatherOptions(opts ...Option) options {
	o := options{rng: nil, spins: unsetSpins}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
