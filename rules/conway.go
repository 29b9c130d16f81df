package rules

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

  - fewer than 2 or more than 3 neighbors: the cell dies (isolation, overcrowding)
  - exactly 3 neighbors: the cell is alive (survival or birth)
  - exactly 2 neighbors: the cell keeps its current state
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors < 2 || neighbors > 3:
		return false
	case neighbors == 3:
		return true
	default:
		return alive
	}
}
