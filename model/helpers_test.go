package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from rows of '#' (alive) and '.' (dead)
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows))
	require.NoError(t, err)
	for r, line := range rows {
		require.Len(t, line, len(rows), "row %d is not square", r)
		for c, ch := range line {
			g.Set(r, c, ch == '#')
		}
	}
	return g
}

// rowsOf renders a grid back into '#'/'.' rows
func rowsOf(v View) []string {
	rows := make([]string, v.Size())
	for r := range v.Size() {
		var b strings.Builder
		for c := range v.Size() {
			if v.Alive(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}
	return rows
}
