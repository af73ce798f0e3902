package app

import (
	"testing"
	"time"
)

func TestStepClockPacesSteps(t *testing.T) {
	fake := time.Unix(0, 0)
	sc := NewStepClock(10) // one step per 100ms
	sc.now = func() time.Time { return fake }

	// The first call is primed to step immediately.
	if !sc.ShouldStep() {
		t.Fatal("first call should grant a step")
	}
	if sc.ShouldStep() {
		t.Fatal("no time has passed, no step due")
	}

	fake = fake.Add(50 * time.Millisecond)
	if sc.ShouldStep() {
		t.Fatal("only half an interval has passed")
	}

	fake = fake.Add(60 * time.Millisecond)
	if !sc.ShouldStep() {
		t.Fatal("a full interval has passed, a step is due")
	}
}

func TestStepClockDoesNotBurstAfterStall(t *testing.T) {
	fake := time.Unix(0, 0)
	sc := NewStepClock(10)
	sc.now = func() time.Time { return fake }
	sc.ShouldStep()

	// A long stall owes many intervals, but they are granted one per
	// call and the backlog is clamped.
	fake = fake.Add(2 * time.Second)
	if !sc.ShouldStep() {
		t.Fatal("step due after stall")
	}
	fake = fake.Add(time.Millisecond)
	if !sc.ShouldStep() {
		t.Fatal("one clamped backlog step should remain")
	}
	fake = fake.Add(time.Millisecond)
	if sc.ShouldStep() {
		t.Fatal("backlog should be clamped to a single interval")
	}
}

func TestStepClockDefaultsBadTPS(t *testing.T) {
	sc := NewStepClock(0)
	if sc.step != 100*time.Millisecond {
		t.Fatalf("zero tps should default to 10/s, step = %v", sc.step)
	}
	sc.SetTPS(-5)
	if sc.step != 100*time.Millisecond {
		t.Fatalf("negative tps should default to 10/s, step = %v", sc.step)
	}
}
