package cutscene

import (
	"testing"
	"time"
)

func testScript() Script {
	return Script{
		ID: "test",
		Frames: []Frame{
			{Text: "one", Duration: time.Second},
			{Text: "two", Duration: 500 * time.Millisecond},
		},
	}
}

func TestPlayerAdvancesThroughFrames(t *testing.T) {
	p := NewPlayer()
	p.Load(testScript())
	p.Start()

	if p.Done() {
		t.Fatal("Player should be running after Start")
	}

	p.Update(900 * time.Millisecond)
	if p.index != 0 {
		t.Errorf("index = %d, expected to still be on frame 0", p.index)
	}

	p.Update(200 * time.Millisecond)
	if p.index != 1 {
		t.Errorf("index = %d, expected frame 1", p.index)
	}

	p.Update(time.Second)
	if !p.Done() {
		t.Error("Player should be done after the last frame elapses")
	}
}

func TestPlayerSkip(t *testing.T) {
	p := NewPlayer()
	p.Load(testScript())
	p.Start()

	p.Skip()
	if !p.Done() {
		t.Error("Skip should end playback immediately")
	}
}

func TestPlayerEmptyScriptIsDone(t *testing.T) {
	p := NewPlayer()
	p.Load(Script{ID: "empty"})
	p.Start()

	if !p.Done() {
		t.Error("Starting an empty script should leave the player done")
	}
	p.Update(time.Second) // Must not panic
}

func TestPlayerPlayByID(t *testing.T) {
	p := NewPlayer()
	p.Register(testScript())

	p.Play("test")
	if p.Done() {
		t.Error("Play with a registered ID should start playback")
	}

	p.Play("missing")
	if !p.Done() {
		t.Error("Play with an unknown ID should leave the player done")
	}
}

func TestPlayerHasIntroRegistered(t *testing.T) {
	p := NewPlayer()

	p.Play("intro")
	if p.Done() {
		t.Error("The built-in intro script should be playable by ID")
	}
}

func TestPlayerRestart(t *testing.T) {
	p := NewPlayer()
	p.Load(testScript())
	p.Start()
	p.Update(5 * time.Second)

	p.Start()
	if p.Done() || p.index != 0 {
		t.Error("Start should rewind to the first frame")
	}
}
