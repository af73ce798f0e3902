// Package grid provides an immutable toroidal grid of binary cell states.
//
// A Grid is a value: mutating operations return a fresh Grid and never touch
// storage reachable from previously handed-out values, so any number of
// holders (renderers, undo logs) can keep snapshots without copying.
package grid

// Cell is the binary state of a single grid position.
type Cell uint8

const (
	// Dead is the inactive cell state and the zero value.
	Dead Cell = iota
	// Alive is the active cell state.
	Alive
)

// IsAlive reports whether the cell is in the Alive state.
func (c Cell) IsAlive() bool { return c == Alive }

// Toggle returns the opposite cell state.
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// Coord addresses a cell. Coordinates are signed: arithmetic on a torus
// routinely goes negative or past the edge before wrapping.
type Coord struct {
	X int
	Y int
}

// Grid stores cell states in row-major order with toroidal wrapping.
// The zero value is the empty grid.
type Grid struct {
	w, h  int
	cells []Cell
}

// New allocates an all-Dead grid with the given dimensions. A non-positive
// dimension yields the empty grid.
func New(w, h int) Grid {
	return NewFilled(w, h, Dead)
}

// NewFilled allocates a grid with every cell set to v.
func NewFilled(w, h int, v Cell) Grid {
	if w <= 0 || h <= 0 {
		return Grid{}
	}
	g := Grid{w: w, h: h, cells: make([]Cell, w*h)}
	if v != Dead {
		for i := range g.cells {
			g.cells[i] = v
		}
	}
	return g
}

// FromCells builds a grid from a row-major cell slice. It returns the empty
// grid when the dimensions are non-positive or do not match len(cells).
// The slice is copied; the caller keeps ownership of its argument.
func FromCells(w, h int, cells []Cell) Grid {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return Grid{}
	}
	g := Grid{w: w, h: h, cells: make([]Cell, len(cells))}
	copy(g.cells, cells)
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g Grid) Height() int { return g.h }

// IsEmpty reports whether the grid has no cells.
func (g Grid) IsEmpty() bool { return len(g.cells) == 0 }

// Cells exposes the backing storage for read-only iteration, row-major.
// Callers must not write through the returned slice.
func (g Grid) Cells() []Cell { return g.cells }

// wrap maps an arbitrary coordinate into [0,w)x[0,h) using floored modulo,
// so negative inputs land on the far edge instead of panicking.
func (g Grid) wrap(c Coord) (int, int) {
	x := (c.X%g.w + g.w) % g.w
	y := (c.Y%g.h + g.h) % g.h
	return x, y
}

// Get returns the cell at c after toroidal wrapping. The empty grid has no
// cells and always reports Dead.
func (g Grid) Get(c Coord) Cell {
	if g.IsEmpty() {
		return Dead
	}
	x, y := g.wrap(c)
	return g.cells[y*g.w+x]
}

// Set returns a copy of the grid with the cell at c replaced by v.
func (g Grid) Set(c Coord, v Cell) Grid {
	if g.IsEmpty() {
		return g
	}
	x, y := g.wrap(c)
	out := g.clone()
	out.cells[y*out.w+x] = v
	return out
}

// Update returns a copy of the grid with f applied to the cell at c.
func (g Grid) Update(c Coord, f func(Cell) Cell) Grid {
	return g.Set(c, f(g.Get(c)))
}

// mooreOffsets lists the eight neighbour displacements, row by row.
var mooreOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbours returns the eight Moore-neighbourhood cells around c, each
// offset wrapped independently.
func (g Grid) Neighbours(c Coord) [8]Cell {
	var out [8]Cell
	for i, d := range mooreOffsets {
		out[i] = g.Get(Coord{X: c.X + d.X, Y: c.Y + d.Y})
	}
	return out
}

// LiveNeighbours counts the Alive cells in the Moore neighbourhood of c.
func (g Grid) LiveNeighbours(c Coord) int {
	n := 0
	for _, cell := range g.Neighbours(c) {
		if cell.IsAlive() {
			n++
		}
	}
	return n
}

// MapCoords returns a new grid where every cell is f(coord, oldCell).
// f must be a pure function of its arguments; it sees the original grid's
// values regardless of what it has already produced.
func (g Grid) MapCoords(f func(Coord, Cell) Cell) Grid {
	if g.IsEmpty() {
		return g
	}
	out := Grid{w: g.w, h: g.h, cells: make([]Cell, len(g.cells))}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			out.cells[i] = f(Coord{X: x, Y: y}, g.cells[i])
		}
	}
	return out
}

// All reports whether pred holds for every cell. It is vacuously true on
// the empty grid.
func (g Grid) All(pred func(Cell) bool) bool {
	for _, c := range g.cells {
		if !pred(c) {
			return false
		}
	}
	return true
}

// Population counts the Alive cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.IsAlive() {
			n++
		}
	}
	return n
}

// Equal reports structural equality: same dimensions, same cell sequence.
func (g Grid) Equal(o Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (g Grid) clone() Grid {
	out := Grid{w: g.w, h: g.h, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}
