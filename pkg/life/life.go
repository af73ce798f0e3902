// Package life applies Conway's Game of Life rule to toroidal grids and
// tracks generations through an undo/redo session.
package life

import "golife/pkg/grid"

// Step produces the next generation: a live cell with two or three live
// neighbours survives, a dead cell with exactly three is born, everything
// else is dead.
func Step(g grid.Grid) grid.Grid {
	return g.MapCoords(func(c grid.Coord, cell grid.Cell) grid.Cell {
		n := g.LiveNeighbours(c)
		if cell.IsAlive() && (n == 2 || n == 3) {
			return grid.Alive
		}
		if !cell.IsAlive() && n == 3 {
			return grid.Alive
		}
		return grid.Dead
	})
}

// Finished reports whether the board has no live cells left. Oscillators
// and still-lifes keep running; only extinction counts as finished here.
func Finished(g grid.Grid) bool {
	return g.All(func(c grid.Cell) bool { return !c.IsAlive() })
}

// Toggle flips the cell at c between Alive and Dead.
func Toggle(g grid.Grid, c grid.Coord) grid.Grid {
	return g.Update(c, grid.Cell.Toggle)
}
