package tui

import (
	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/scene"
)

// Overlay is the terminal implementation of the mode controller's menu
// service. The controller says which overlay should be visible; the model
// draws it over the scene each frame.
type Overlay struct {
	visible scene.MenuID
	shown   bool
}

// NewOverlay creates an overlay with nothing visible.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// ShowMenu makes the given overlay visible, replacing any other.
func (o *Overlay) ShowMenu(id scene.MenuID) {
	o.visible = id
	o.shown = true
}

// HideAllMenus hides the visible overlay.
func (o *Overlay) HideAllMenus() {
	o.shown = false
}

// Visible returns the currently shown overlay ID, empty when hidden.
func (o *Overlay) Visible() scene.MenuID {
	if !o.shown {
		return ""
	}
	return o.visible
}

// Render draws the visible overlay onto the screen. No-op when hidden.
func (o *Overlay) Render(s *core.Screen) {
	if !o.shown {
		return
	}

	switch o.visible {
	case scene.MenuTitle:
		s.DrawTextCenteredColored(s.Height()-3, "[Enter] start   [Q] quit", core.ColorBrightGreen)

	case scene.MenuPause:
		mid := s.Height() / 2
		w := 30
		box := core.NewRect((s.Width()-w)/2, mid-2, w, 5)
		s.DrawRect(box, ' ', core.ColorDefault)
		s.DrawBox(box, core.ColorBrightBlue)
		s.DrawTextCenteredColored(mid-1, "PAUSED", core.ColorBrightWhite)
		s.DrawTextCenteredColored(mid+1, "[P] resume  [M] title", core.ColorGray)

	case scene.MenuGameOver:
		// The run HUD already shows the game over banner; the overlay only
		// adds the hint row when no world is rendered underneath.
		s.DrawTextCenteredColored(s.Height()-3, "[E] back to title", core.ColorGray)
	}
}
