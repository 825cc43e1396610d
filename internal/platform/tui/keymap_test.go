package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.KeyJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.KeyJump},
		{"w jumps", runeKey('w'), core.KeyJump},
		{"e interacts", runeKey('e'), core.KeyInteract},
		{"enter interacts", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyInteract},
		{"esc escapes", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape},
		{"m opens menu", runeKey('m'), core.KeyMenu},
		{"x unbound", runeKey('x'), core.Key("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %q, expected %q", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapSessionActionBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want SessionAction
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, SessionActionQuit},
		{"q quits", runeKey('q'), SessionActionQuit},
		{"p pauses", runeKey('p'), SessionActionPause},
		{"m goes to title", runeKey('m'), SessionActionTitle},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, SessionActionConfirm},
		{"x unbound", runeKey('x'), SessionActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapSessionAction(tt.msg); got != tt.want {
				t.Errorf("MapSessionAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestOverlayShowReplacesVisible(t *testing.T) {
	o := NewOverlay()

	if o.Visible() != "" {
		t.Fatalf("Visible() = %q on a fresh overlay, expected empty", o.Visible())
	}

	o.ShowMenu("title")
	o.ShowMenu("pause")
	if o.Visible() != "pause" {
		t.Errorf("Visible() = %q, expected pause to replace title", o.Visible())
	}

	o.HideAllMenus()
	if o.Visible() != "" {
		t.Errorf("Visible() = %q after hiding, expected empty", o.Visible())
	}
}
