// Package scene implements the top-level mode state machine that decides
// what the player is currently doing (title menu, running, paused, watching
// a cutscene) and drives the matching update/render cycle with its entry and
// exit side effects.
package scene

// Mode is the top-level game mode. Exactly one is active at any time, owned
// exclusively by the Machine. An active battle is not a mode: Play hosts the
// battle machine by composition.
type Mode int

const (
	// ModeMenu is the title screen.
	ModeMenu Mode = iota
	// ModePlay is the running simulation, possibly hosting a battle.
	ModePlay
	// ModePause is the pause overlay with ducked music.
	ModePause
	// ModeCutscene delegates the frame to the cutscene player.
	ModeCutscene
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlay:
		return "play"
	case ModePause:
		return "pause"
	case ModeCutscene:
		return "cutscene"
	default:
		return "unknown"
	}
}
