package grid

import (
	"slices"
	"testing"
)

func TestWrapPeriodicity(t *testing.T) {
	g := New(7, 5).Set(Coord{X: 3, Y: 2}, Alive)

	coords := []Coord{
		{3, 2},
		{3 + 7, 2 + 5},
		{3 - 7, 2 - 5},
		{3 - 70, 2 + 50},
	}
	for _, c := range coords {
		if got := g.Get(c); got != Alive {
			t.Fatalf("Get(%v) = %v, expected Alive", c, got)
		}
	}

	for _, c := range []Coord{{-1, -1}, {100, -37}, {-8, 9}} {
		wrapped := Coord{X: (c.X%7 + 7) % 7, Y: (c.Y%5 + 5) % 5}
		if g.Get(c) != g.Get(wrapped) {
			t.Fatalf("Get(%v) != Get(%v)", c, wrapped)
		}
	}
}

func TestSetDoesNotAliasOldSnapshots(t *testing.T) {
	before := New(4, 4)
	after := before.Set(Coord{X: 1, Y: 1}, Alive)

	if before.Get(Coord{X: 1, Y: 1}) != Dead {
		t.Fatal("Set mutated the original grid")
	}
	if after.Get(Coord{X: 1, Y: 1}) != Alive {
		t.Fatal("Set did not change the copy")
	}
	if after.Population() != 1 {
		t.Fatalf("population = %d, expected 1", after.Population())
	}
}

func TestSetWrapsNegativeCoordinates(t *testing.T) {
	g := New(3, 3).Set(Coord{X: -1, Y: -1}, Alive)
	if g.Get(Coord{X: 2, Y: 2}) != Alive {
		t.Fatal("Set(-1,-1) should land on (2,2)")
	}
}

func TestNeighboursAtCorner(t *testing.T) {
	// A lone live cell at (0,0) on a 3x3 torus is a neighbour of (2,2)
	// through every diagonal edge.
	g := New(3, 3).Set(Coord{X: 0, Y: 0}, Alive)

	if n := g.LiveNeighbours(Coord{X: 2, Y: 2}); n != 1 {
		t.Fatalf("LiveNeighbours(2,2) = %d, expected 1", n)
	}
	if n := g.LiveNeighbours(Coord{X: 0, Y: 0}); n != 0 {
		t.Fatalf("LiveNeighbours(0,0) = %d, expected 0 (self excluded)", n)
	}

	cells := g.Neighbours(Coord{X: 1, Y: 1})
	live := 0
	for _, c := range cells {
		if c.IsAlive() {
			live++
		}
	}
	if live != 1 {
		t.Fatalf("Neighbours(1,1) has %d live cells, expected 1", live)
	}
}

func TestNeighboursOnTinyGrid(t *testing.T) {
	// On a 1x1 torus every offset wraps back to the single cell.
	g := New(1, 1).Set(Coord{}, Alive)
	if n := g.LiveNeighbours(Coord{}); n != 8 {
		t.Fatalf("LiveNeighbours on 1x1 = %d, expected 8", n)
	}
}

func TestMapCoordsSeesOriginalValues(t *testing.T) {
	g := New(3, 1).Set(Coord{X: 0, Y: 0}, Alive)

	// Shift every cell one to the right; each cell must read its left
	// neighbour from the pre-map grid, not the partially built one.
	shifted := g.MapCoords(func(c Coord, _ Cell) Cell {
		return g.Get(Coord{X: c.X - 1, Y: c.Y})
	})

	want := []Cell{Dead, Alive, Dead}
	if !slices.Equal(shifted.Cells(), want) {
		t.Fatalf("shifted cells = %v, expected %v", shifted.Cells(), want)
	}
}

func TestAllAndPopulation(t *testing.T) {
	g := New(4, 3)
	if !g.All(func(c Cell) bool { return c == Dead }) {
		t.Fatal("fresh grid should be all Dead")
	}

	g = g.Set(Coord{X: 2, Y: 1}, Alive)
	if g.All(func(c Cell) bool { return c == Dead }) {
		t.Fatal("grid with a live cell reported all Dead")
	}
	if g.Population() != 1 {
		t.Fatalf("population = %d, expected 1", g.Population())
	}
}

func TestEqual(t *testing.T) {
	a := New(3, 3).Set(Coord{X: 1, Y: 1}, Alive)
	b := New(3, 3).Set(Coord{X: 1, Y: 1}, Alive)
	if !a.Equal(b) {
		t.Fatal("identical grids reported unequal")
	}
	if a.Equal(b.Set(Coord{X: 0, Y: 0}, Alive)) {
		t.Fatal("different grids reported equal")
	}
	if a.Equal(New(3, 4)) {
		t.Fatal("different dimensions reported equal")
	}
}

func TestEmptyGridIsTotal(t *testing.T) {
	var g Grid
	if !g.IsEmpty() {
		t.Fatal("zero Grid should be empty")
	}
	if g.Get(Coord{X: 5, Y: -3}) != Dead {
		t.Fatal("Get on empty grid should report Dead")
	}
	if !g.All(func(Cell) bool { return false }) {
		t.Fatal("All should hold vacuously on the empty grid")
	}
	if got := New(0, 5); !got.IsEmpty() {
		t.Fatal("New with zero width should produce the empty grid")
	}
}

func TestUpdateToggleRoundTrip(t *testing.T) {
	g := New(5, 5).Set(Coord{X: 3, Y: 3}, Alive)
	c := Coord{X: -2, Y: 8}

	once := g.Update(c, Cell.Toggle)
	twice := once.Update(c, Cell.Toggle)
	if !twice.Equal(g) {
		t.Fatal("double toggle should restore the original grid")
	}
	if once.Equal(g) {
		t.Fatal("single toggle should change the grid")
	}
}
