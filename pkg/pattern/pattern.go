// Package pattern provides named Game of Life seed patterns as live
// coordinate lists, plus a registry the application picks boards from.
package pattern

import (
	"sort"

	"golife/pkg/grid"
)

// Pattern is a board seed expressed as a list of live coordinates inside a
// bounding box. It is the interchange form between boards and whatever
// produced the coordinates; file formats are a concern of the producer.
type Pattern struct {
	Name string
	Size grid.Coord
	Live []grid.Coord
}

// Place renders the pattern onto an otherwise-dead w-by-h board, centered.
// Coordinates falling outside the board wrap like any other coordinate.
func (p Pattern) Place(w, h int) grid.Grid {
	g := grid.New(w, h)
	if g.IsEmpty() {
		return g
	}
	dx := (w - p.Size.X) / 2
	dy := (h - p.Size.Y) / 2
	for _, c := range p.Live {
		g = g.Set(grid.Coord{X: c.X + dx, Y: c.Y + dy}, grid.Alive)
	}
	return g
}

// Grid renders the pattern at its own bounding-box size.
func (p Pattern) Grid() grid.Grid {
	return p.Place(p.Size.X, p.Size.Y)
}

// Extract captures a board's live cells as a Pattern, row-major. It is the
// export direction: Extract(p.Grid(), name) round-trips with Grid.
func Extract(g grid.Grid, name string) Pattern {
	p := Pattern{
		Name: name,
		Size: grid.Coord{X: g.Width(), Y: g.Height()},
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Get(grid.Coord{X: x, Y: y}).IsAlive() {
				p.Live = append(p.Live, grid.Coord{X: x, Y: y})
			}
		}
	}
	return p
}

// SeedFunc builds an initial board for the given dimensions. The seed only
// matters to randomized patterns.
type SeedFunc func(w, h int, seed int64) grid.Grid

var seeds = map[string]SeedFunc{}

// Register adds a seed factory under the provided name.
func Register(name string, f SeedFunc) {
	if name == "" || f == nil {
		return
	}
	seeds[name] = f
}

// Seeds exposes the registry of available seed factories.
func Seeds() map[string]SeedFunc {
	return seeds
}

// Names returns the registered seed names in sorted order.
func Names() []string {
	out := make([]string, 0, len(seeds))
	for name := range seeds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
