package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// SessionAction is a platform-level action derived from input. These are
// handled by the model itself rather than forwarded to the game, mostly
// because they must work while the frame clock is stopped.
type SessionAction int

const (
	SessionActionNone SessionAction = iota
	SessionActionQuit
	SessionActionPause
	SessionActionTitle
	SessionActionConfirm
)

// KeyMapper translates Bubble Tea key messages to game keys and session
// actions. Centralizing the bindings keeps them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game key. Returns the empty key when
// the message does not map to one.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Key {
	switch msg.String() {
	case " ", "up", "w":
		return core.KeyJump
	case "e", "enter":
		return core.KeyInteract
	case "esc", "b":
		return core.KeyEscape
	case "m":
		return core.KeyMenu
	}
	return ""
}

// MapSessionAction translates a key message to a platform action.
func (km *KeyMapper) MapSessionAction(msg tea.KeyMsg) SessionAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return SessionActionQuit
	case "p":
		return SessionActionPause
	case "m":
		return SessionActionTitle
	case "enter", " ", "e":
		return SessionActionConfirm
	}
	return SessionActionNone
}
