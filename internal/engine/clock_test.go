package engine

import (
	"testing"
	"time"
)

func TestClockStartStopIdempotent(t *testing.T) {
	c := NewClock()

	if c.Running() {
		t.Fatal("New clock should be stopped")
	}

	c.Start()
	c.Start()
	if !c.Running() {
		t.Error("Clock should be running after Start")
	}

	c.Stop()
	c.Stop()
	if c.Running() {
		t.Error("Clock should be stopped after Stop")
	}
}

func TestClockAdvanceOnlyWhileRunning(t *testing.T) {
	c := NewClock()

	c.Advance(time.Second)
	if c.Elapsed() != 0 {
		t.Errorf("Stopped clock accumulated %v, expected 0", c.Elapsed())
	}

	c.Start()
	c.Advance(500 * time.Millisecond)
	c.Advance(250 * time.Millisecond)
	if c.Elapsed() != 750*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 750ms", c.Elapsed())
	}

	c.Stop()
	c.Advance(time.Second)
	if c.Elapsed() != 750*time.Millisecond {
		t.Errorf("Stopped clock kept accumulating: %v", c.Elapsed())
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock()
	c.Start()
	c.Advance(time.Second)

	c.Reset()
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() after Reset = %v, expected 0", c.Elapsed())
	}
	if !c.Running() {
		t.Error("Reset must not touch the running flag")
	}
}
