// Package cutscene implements a scripted text cutscene player. The Cutscene
// mode delegates its whole frame to this player; the mode controller never
// advances cutscene content itself.
package cutscene

import (
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// Frame is one timed line of a cutscene.
type Frame struct {
	Text     string
	Duration time.Duration
}

// Script is an ordered sequence of frames.
type Script struct {
	ID     string
	Frames []Frame
}

// IntroScript is the scripted intro shown at the start of a run.
func IntroScript() Script {
	return Script{
		ID: "intro",
		Frames: []Frame{
			{Text: "Somewhere past the last checkpoint...", Duration: 2 * time.Second},
			{Text: "Luckie laces up.", Duration: 1500 * time.Millisecond},
			{Text: "Run. Jump. Don't stop.", Duration: 2 * time.Second},
		},
	}
}

// Player plays one script at a time from a registry of known scripts.
type Player struct {
	scripts map[string]Script
	script  Script
	index   int
	elapsed time.Duration
	running bool
}

// NewPlayer creates an idle player with the built-in scripts registered.
func NewPlayer() *Player {
	p := &Player{
		scripts: make(map[string]Script),
	}
	p.Register(IntroScript())
	return p
}

// Register adds a script to the registry, replacing any script with the
// same ID.
func (p *Player) Register(s Script) {
	p.scripts[s.ID] = s
}

// Play starts the registered script with the given ID. An unknown ID leaves
// the player done, so the owning mode returns to gameplay immediately.
func (p *Player) Play(id string) {
	s, ok := p.scripts[id]
	if !ok {
		p.running = false
		p.index = len(p.script.Frames)
		return
	}
	p.Load(s)
	p.Start()
}

// Load stages a script. Start begins playing it from the first frame.
func (p *Player) Load(s Script) {
	p.script = s
	p.index = 0
	p.elapsed = 0
	p.running = false
}

// Start begins (or restarts) playback of the loaded script.
func (p *Player) Start() {
	p.index = 0
	p.elapsed = 0
	p.running = len(p.script.Frames) > 0
}

// Update advances playback by dt.
func (p *Player) Update(dt time.Duration) {
	if !p.running {
		return
	}

	p.elapsed += dt
	for p.index < len(p.script.Frames) && p.elapsed >= p.script.Frames[p.index].Duration {
		p.elapsed -= p.script.Frames[p.index].Duration
		p.index++
	}

	if p.index >= len(p.script.Frames) {
		p.running = false
	}
}

// Skip ends playback immediately.
func (p *Player) Skip() {
	p.index = len(p.script.Frames)
	p.running = false
}

// Done reports whether playback has finished (or never started).
func (p *Player) Done() bool {
	return !p.running
}

// Render draws the current frame centered on screen.
func (p *Player) Render(s *core.Screen) {
	if !p.running || p.index >= len(p.script.Frames) {
		return
	}

	mid := s.Height() / 2
	s.DrawTextCenteredColored(mid, p.script.Frames[p.index].Text, core.ColorBrightWhite)
	s.DrawTextCenteredColored(s.Height()-2, "[Esc] skip", core.ColorGray)
}
