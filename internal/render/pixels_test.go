package render

import (
	"image/color"
	"testing"

	"golife/pkg/grid"
)

func TestFillCellsRGBA(t *testing.T) {
	g := grid.New(2, 1).Set(grid.Coord{X: 1, Y: 0}, grid.Alive)
	buf := make([]byte, 8)
	fillCellsRGBA(buf, g.Cells(), color.White, color.Black)

	// Dead cell: opaque black.
	for i, want := range []byte{0, 0, 0, 255} {
		if buf[i] != want {
			t.Fatalf("dead pixel byte %d = %d, expected %d", i, buf[i], want)
		}
	}
	// Live cell: opaque white.
	for i, want := range []byte{255, 255, 255, 255} {
		if buf[4+i] != want {
			t.Fatalf("live pixel byte %d = %d, expected %d", i, buf[4+i], want)
		}
	}
}
