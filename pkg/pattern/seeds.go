package pattern

import "golife/pkg/grid"

func coords(pairs ...[2]int) []grid.Coord {
	out := make([]grid.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = grid.Coord{X: p[0], Y: p[1]}
	}
	return out
}

// Blinker is the period-2 oscillator: three cells in a row.
var Blinker = Pattern{
	Name: "blinker",
	Size: grid.Coord{X: 5, Y: 5},
	Live: coords([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}),
}

// Glider is the classic diagonal spaceship.
var Glider = Pattern{
	Name: "glider",
	Size: grid.Coord{X: 5, Y: 5},
	Live: coords(
		[2]int{1, 0},
		[2]int{2, 1},
		[2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2},
	),
}

// Pulsar is the period-3 oscillator, 48 cells in a 13x13 box.
var Pulsar = Pattern{
	Name: "pulsar",
	Size: grid.Coord{X: 13, Y: 13},
	Live: coords(
		[2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0}, [2]int{8, 0}, [2]int{9, 0}, [2]int{10, 0},
		[2]int{0, 2}, [2]int{5, 2}, [2]int{7, 2}, [2]int{12, 2},
		[2]int{0, 3}, [2]int{5, 3}, [2]int{7, 3}, [2]int{12, 3},
		[2]int{0, 4}, [2]int{5, 4}, [2]int{7, 4}, [2]int{12, 4},
		[2]int{2, 5}, [2]int{3, 5}, [2]int{4, 5}, [2]int{8, 5}, [2]int{9, 5}, [2]int{10, 5},
		[2]int{2, 7}, [2]int{3, 7}, [2]int{4, 7}, [2]int{8, 7}, [2]int{9, 7}, [2]int{10, 7},
		[2]int{0, 8}, [2]int{5, 8}, [2]int{7, 8}, [2]int{12, 8},
		[2]int{0, 9}, [2]int{5, 9}, [2]int{7, 9}, [2]int{12, 9},
		[2]int{0, 10}, [2]int{5, 10}, [2]int{7, 10}, [2]int{12, 10},
		[2]int{2, 12}, [2]int{3, 12}, [2]int{4, 12}, [2]int{8, 12}, [2]int{9, 12}, [2]int{10, 12},
	),
}

// Gosper is the Gosper glider gun, the first known infinite-growth pattern.
var Gosper = Pattern{
	Name: "gosper",
	Size: grid.Coord{X: 36, Y: 9},
	Live: coords(
		[2]int{0, 4}, [2]int{1, 4}, [2]int{0, 5}, [2]int{1, 5},
		[2]int{10, 4}, [2]int{10, 5}, [2]int{10, 6},
		[2]int{11, 3}, [2]int{11, 7},
		[2]int{12, 2}, [2]int{12, 8}, [2]int{13, 2}, [2]int{13, 8},
		[2]int{14, 5},
		[2]int{15, 3}, [2]int{15, 7},
		[2]int{16, 4}, [2]int{16, 5}, [2]int{16, 6},
		[2]int{17, 5},
		[2]int{20, 2}, [2]int{20, 3}, [2]int{20, 4},
		[2]int{21, 2}, [2]int{21, 3}, [2]int{21, 4},
		[2]int{22, 1}, [2]int{22, 5},
		[2]int{24, 0}, [2]int{24, 1}, [2]int{24, 5}, [2]int{24, 6},
		[2]int{34, 2}, [2]int{34, 3}, [2]int{35, 2}, [2]int{35, 3},
	),
}

// Soup fills roughly half the board with live cells using a seeded RNG.
func Soup(w, h int, seed int64) grid.Grid {
	if w <= 0 || h <= 0 {
		return grid.Grid{}
	}
	rng := NewRNG(seed)
	cells := make([]grid.Cell, w*h)
	for i := range cells {
		if rng.Bool() {
			cells[i] = grid.Alive
		}
	}
	return grid.FromCells(w, h, cells)
}

func fixed(p Pattern) SeedFunc {
	return func(w, h int, _ int64) grid.Grid { return p.Place(w, h) }
}

func init() {
	Register("empty", func(w, h int, _ int64) grid.Grid { return grid.New(w, h) })
	Register("blinker", fixed(Blinker))
	Register("glider", fixed(Glider))
	Register("pulsar", fixed(Pulsar))
	Register("gosper", fixed(Gosper))
	Register("soup", Soup)
}
