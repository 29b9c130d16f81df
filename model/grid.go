package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Cell is the state of a single grid position. The two values double as display intensities.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 255
)

// Grid is a square board whose edges wrap around (a torus)
type Grid struct {
	size  int
	cells []Cell // row-major
}

// NewGrid creates a size x size grid with every cell dead
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] size must be positive, got %d", size)
	}
	return newGrid(size), nil
}

func newGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the number of rows (and columns) of the grid
func (g *Grid) Size() int {
	return g.size
}

// Set sets a cell to alive (true) or dead (false). Coordinates outside the grid are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.inBounds(row, col) {
		return
	}
	if alive {
		g.cells[row*g.size+col] = Alive
	} else {
		g.cells[row*g.size+col] = Dead
	}
}

// At returns the state of a cell, wrapping the coordinates around the torus
func (g *Grid) At(row, col int) Cell {
	row, col = g.Wrap(row, col)
	return g.cells[row*g.size+col]
}

// Alive reports whether a cell is alive, wrapping the coordinates around the torus
func (g *Grid) Alive(row, col int) bool {
	return g.At(row, col) == Alive
}

// Wrap applies toroidal wrapping to the provided coordinates
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.size + g.size) % g.size
	col = (col%g.size + g.size) % g.size
	return row, col
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.size)
	copy(c.cells, g.cells)
	return c
}

// View returns a read-only handle on the grid
func (g *Grid) View() View {
	return View{g: g}
}

// NeighborCount counts the living cells among the 8 toroidal neighbors of (row, col).
// On grids smaller than 3x3 the same cell may be counted more than once.
func (g *Grid) NeighborCount(row, col int) int {
	row, col = g.Wrap(row, col)
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.size) % g.size
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue // Skip the cell itself
			}
			c := (col + dc + g.size) % g.size
			if g.cells[r*g.size+c] == Alive {
				count++
			}
		}
	}
	return count
}

// NextGeneration computes the following generation into a new grid.
// The receiver is only read. Rows are split into bands evaluated concurrently
// when workers > 1; living and changed are counted in the same pass.
func (g *Grid) NextGeneration(workers int) (next *Grid, living, changed int) {
	next = newGrid(g.size)

	workers = max(1, min(workers, g.size))
	var (
		eg            errgroup.Group
		rowsPerWorker = (g.size + workers - 1) / workers // Ceiling division
		bandLiving    = make([]int, workers)
		bandChanged   = make([]int, workers)
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.size)
		)
		if startRow >= g.size {
			break
		}

		eg.Go(func() error {
			bandLiving[i], bandChanged[i] = g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	// bands never fail
	_ = eg.Wait()

	for i := range workers {
		living += bandLiving[i]
		changed += bandChanged[i]
	}
	return next, living, changed
}

// stepRows writes rows [startRow, endRow) of the next generation into next
func (g *Grid) stepRows(next *Grid, startRow, endRow int) (living, changed int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < g.size; col++ {
			idx := row*g.size + col
			wasAlive := g.cells[idx] == Alive
			isAlive := rules.ApplyConwayRules(g.NeighborCount(row, col), wasAlive)
			if isAlive {
				next.cells[idx] = Alive
				living++
			}
			if isAlive != wasAlive {
				changed++
			}
		}
	}
	return living, changed
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
