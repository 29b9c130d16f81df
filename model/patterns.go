package model

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// glider translates one cell down and to the right every 4 generations
var glider = [3][3]bool{
	{false, false, true},
	{true, false, true},
	{false, true, true},
}

// PlaceGlider stamps a glider into the 3x3 region whose top-left corner is (top, left).
// Placement does not wrap; the grid is left untouched if the region does not fit.
func (g *Grid) PlaceGlider(top, left int) error {
	if !g.inBounds(top, left) || !g.inBounds(top+len(glider)-1, left+len(glider[0])-1) {
		return errors.Wrapf(ErrOutOfBounds, "[PlaceGlider] 3x3 glider at (%d,%d) on %dx%d grid", top, left, g.size, g.size)
	}

	for r, row := range glider {
		for c, alive := range row {
			g.Set(top+r, left+c, alive)
		}
	}
	return nil
}

// NewRNG creates a deterministic random source for the provided seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewRandomGrid creates a grid in which every cell is independently alive with probability p
func NewRandomGrid(size int, p float64, rng *rand.Rand) (*Grid, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, errors.Wrapf(ErrInvalidProbability, "[NewRandomGrid] probability must be within [0,1], got %v", p)
	}
	g, err := NewGrid(size)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandomGrid]")
	}

	for i := range g.cells {
		if rng.Float64() < p {
			g.cells[i] = Alive
		}
	}
	return g, nil
}
