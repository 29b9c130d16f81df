package model

// View is a read-only handle on a grid snapshot
type View struct {
	g *Grid
}

// Size returns the number of rows (and columns) of the snapshot
func (v View) Size() int { return v.g.size }

// At returns the state of a cell, wrapping the coordinates around the torus
func (v View) At(row, col int) Cell { return v.g.At(row, col) }

// Alive reports whether a cell is alive
func (v View) Alive(row, col int) bool { return v.g.Alive(row, col) }

// Living returns the number of living cells
func (v View) Living() int { return v.g.CountLivingCells() }

// Hash returns an MD5 digest of the snapshot
func (v View) Hash() string { return v.g.Hash() }

// Intensities returns a row-major copy of the cell intensities, suitable as a grayscale image
func (v View) Intensities() []uint8 {
	out := make([]uint8, len(v.g.cells))
	for i, c := range v.g.cells {
		out[i] = uint8(c)
	}
	return out
}

// Clone returns a mutable copy of the snapshot
func (v View) Clone() *Grid { return v.g.Clone() }
