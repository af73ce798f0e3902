//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"golife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status readout over the board: generation count,
// population, run state and undo depth.
type HUD struct {
	session *life.Session
	shadow  color.Color
	ink     color.Color
}

// NewHUD constructs a HUD bound to the session it reports on.
func NewHUD(s *life.Session) *HUD {
	return &HUD{
		session: s,
		shadow:  color.Black,
		ink:     color.White,
	}
}

// Draw renders the status line in the top-left corner.
func (h *HUD) Draw(dst *ebiten.Image) {
	if h == nil || h.session == nil {
		return
	}
	state := "running"
	if h.session.Paused() {
		state = "paused"
	}
	line := fmt.Sprintf("gen %d  pop %d  %s  undo %d",
		h.session.Generation(),
		h.session.Now().Population(),
		state,
		h.session.UndoDepth(),
	)

	face := basicfont.Face7x13
	// Shadow first so the line stays readable over live cells.
	text.Draw(dst, line, face, 5, 14, h.shadow)
	text.Draw(dst, line, face, 4, 13, h.ink)
}
