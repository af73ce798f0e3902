package life

import (
	"golife/pkg/grid"
	"golife/pkg/history"
)

// state is one entry in the session timeline: the board plus the number of
// generations stepped since the last seed. Storing both means undo and redo
// restore the generation counter along with the cells.
type state struct {
	board grid.Grid
	gen   int
}

func sameBoard(a, b state) bool { return a.board.Equal(b.board) }

// Session drives a Game of Life board through an undo/redo log. Every edit
// and every generation step enters the timeline through a single Record
// call, so undo walks back through both.
//
// A Session is not safe for concurrent use; the driving event loop must
// serialize calls.
type Session struct {
	log    *history.Log[state]
	paused bool
}

// NewSession starts a paused session on the given board. historyLimit caps
// the number of retained past states, 0 meaning unbounded.
func NewSession(initial grid.Grid, historyLimit int) *Session {
	return &Session{
		log:    history.NewBounded(state{board: initial}, historyLimit),
		paused: true,
	}
}

// Now returns the current board.
func (s *Session) Now() grid.Grid { return s.log.Now().board }

// Generation returns the number of steps applied since the last seed.
func (s *Session) Generation() int { return s.log.Now().gen }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// SetPaused suspends or resumes automatic stepping.
func (s *Session) SetPaused(p bool) { s.paused = p }

// UndoDepth returns the number of states that can still be undone.
func (s *Session) UndoDepth() int { return s.log.PastLen() }

// CanRedo reports whether a Redo would succeed.
func (s *Session) CanRedo() bool { return s.log.CanRedo() }

// Advance records one generation step. When the step changes nothing (a
// still board, including extinction) the session pauses itself.
func (s *Session) Advance() {
	s.log.Record(func(st state) state {
		return state{board: Step(st.board), gen: st.gen + 1}
	})
	if s.log.Unchanged(sameBoard) || Finished(s.Now()) {
		s.paused = true
	}
}

// Toggle records a single-cell edit at c. Edits do not advance the
// generation counter.
func (s *Session) Toggle(c grid.Coord) {
	s.log.Record(func(st state) state {
		return state{board: Toggle(st.board, c), gen: st.gen}
	})
}

// Seed records a wholesale board replacement, e.g. an imported pattern,
// and restarts the generation count. The previous board remains one undo
// away.
func (s *Session) Seed(g grid.Grid) {
	s.log.Record(func(state) state {
		return state{board: g}
	})
	s.paused = true
}

// Undo steps the timeline back one recorded state. It reports false,
// leaving everything in place, when there is no past.
func (s *Session) Undo() bool { return s.log.Undo() }

// Redo re-applies the most recently undone state, reporting false when the
// future is empty.
func (s *Session) Redo() bool { return s.log.Redo() }
