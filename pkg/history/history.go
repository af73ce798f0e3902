// Package history implements a linear undo/redo log over value snapshots.
//
// The log keeps three pieces of state: a past stack, exactly one present
// value, and a future stack of undone values. Recording a new state forks
// the timeline: whatever was redoable is discarded.
package history

// Log is an undo/redo log of T snapshots. The zero value is not usable;
// construct with New or NewBounded.
type Log[T any] struct {
	past    []T
	present T
	future  []T
	limit   int
}

// New returns an unbounded log whose present is initial.
func New[T any](initial T) *Log[T] {
	return NewBounded(initial, 0)
}

// NewBounded returns a log that retains at most limit past snapshots,
// evicting the oldest on overflow. A limit of 0 means unbounded.
func NewBounded[T any](initial T, limit int) *Log[T] {
	if limit < 0 {
		limit = 0
	}
	return &Log[T]{present: initial, limit: limit}
}

// Now returns the current present value.
func (l *Log[T]) Now() T { return l.present }

// Record pushes the present onto the past, makes transform(present) the new
// present, and clears the future. It is the only way new states enter the
// log; undone states cannot be redone across a Record.
func (l *Log[T]) Record(transform func(T) T) {
	l.past = append(l.past, l.present)
	if l.limit > 0 && len(l.past) > l.limit {
		l.past = l.past[len(l.past)-l.limit:]
	}
	l.present = transform(l.present)
	l.future = l.future[:0]
}

// Undo moves the present onto the future and restores the most recent past
// snapshot. It reports false, leaving the log untouched, when there is no
// past to return to.
func (l *Log[T]) Undo() bool {
	if len(l.past) == 0 {
		return false
	}
	top := l.past[len(l.past)-1]
	l.past = l.past[:len(l.past)-1]
	l.future = append(l.future, l.present)
	l.present = top
	return true
}

// Redo moves the present onto the past and restores the most recently
// undone snapshot. It reports false, leaving the log untouched, when there
// is nothing to redo.
func (l *Log[T]) Redo() bool {
	if len(l.future) == 0 {
		return false
	}
	top := l.future[len(l.future)-1]
	l.future = l.future[:len(l.future)-1]
	l.past = append(l.past, l.present)
	l.present = top
	return true
}

// CanUndo reports whether Undo would succeed.
func (l *Log[T]) CanUndo() bool { return len(l.past) > 0 }

// CanRedo reports whether Redo would succeed.
func (l *Log[T]) CanRedo() bool { return len(l.future) > 0 }

// PastLen returns the number of retained past snapshots.
func (l *Log[T]) PastLen() int { return len(l.past) }

// Unchanged reports whether the present equals the most recent past
// snapshot under eq. With an empty past it is vacuously true; callers use
// it to detect a recorded transform that produced no change.
func (l *Log[T]) Unchanged(eq func(a, b T) bool) bool {
	if len(l.past) == 0 {
		return true
	}
	return eq(l.present, l.past[len(l.past)-1])
}
