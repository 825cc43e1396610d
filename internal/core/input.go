package core

// Key is a logical key identifier, abstracted from the terminal key encoding.
// The platform layer maps physical key presses onto these.
type Key string

// Keys the simulation and the mode controller care about.
const (
	KeyJump     Key = "jump"     // Space/W/Up - jump
	KeyInteract Key = "interact" // E/Enter - interact, confirm battle
	KeyEscape   Key = "escape"   // Esc - pause, flee battle, skip cutscene
	KeyMenu     Key = "menu"     // M - back to title
)

// Input is a one-shot key press snapshot shared between the platform layer
// and the simulation. The platform records presses as they arrive; consumers
// take them with Consume* calls, which return true at most once per physical
// press. This edge-trigger contract is what battle input resolution and the
// world jump handling rely on.
type Input struct {
	pressed map[Key]bool
}

// NewInput creates an empty input snapshot.
func NewInput() *Input {
	return &Input{
		pressed: make(map[Key]bool),
	}
}

// Press records a key press for later consumption.
// A second press before consumption is indistinguishable from the first.
func (in *Input) Press(k Key) {
	if in.pressed == nil {
		in.pressed = make(map[Key]bool)
	}
	in.pressed[k] = true
}

// ConsumeKeyPress returns true if the key was pressed since the last
// consumption, and clears it so subsequent calls return false.
func (in *Input) ConsumeKeyPress(k Key) bool {
	if in == nil || in.pressed == nil {
		return false
	}
	if in.pressed[k] {
		delete(in.pressed, k)
		return true
	}
	return false
}

// ConsumeInteractPress is shorthand for ConsumeKeyPress(KeyInteract).
func (in *Input) ConsumeInteractPress() bool {
	return in.ConsumeKeyPress(KeyInteract)
}

// Peek reports whether a key press is pending without consuming it.
func (in *Input) Peek(k Key) bool {
	if in == nil || in.pressed == nil {
		return false
	}
	return in.pressed[k]
}

// Clear drops all pending presses. Called on mode transitions so stale
// presses from one mode do not leak into the next.
func (in *Input) Clear() {
	for k := range in.pressed {
		delete(in.pressed, k)
	}
}
