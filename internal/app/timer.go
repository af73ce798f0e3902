package app

import "time"

// StepClock paces generation steps at a steady rate below the frame rate,
// so the board can tick at 10 generations a second while the window
// redraws at 60.
type StepClock struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewStepClock constructs a StepClock targeting the given generations per
// second.
func NewStepClock(tps int) *StepClock {
	if tps <= 0 {
		tps = 10
	}
	sc := &StepClock{now: time.Now}
	sc.SetTPS(tps)
	sc.accumulator = sc.step
	return sc
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (s *StepClock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	s.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether one generation is due. At most one step is
// granted per call, so a stalled frame cannot burst several generations
// into the same update.
func (s *StepClock) ShouldStep() bool {
	now := s.now()
	if s.last.IsZero() {
		s.last = now
	}
	delta := now.Sub(s.last)
	s.last = now
	s.accumulator += delta
	if s.accumulator >= s.step {
		s.accumulator -= s.step
		if s.accumulator > s.step {
			s.accumulator = s.step
		}
		return true
	}
	return false
}
