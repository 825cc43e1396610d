package scene

import (
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// Volume attenuation factors for the interrupting modes. Restore always puts
// back the captured baseline, so these never need inverting.
const (
	pauseDuckFactor    = 0.3
	cutsceneDuckFactor = 0.7
)

// pauseHandler freezes the simulation under a pause overlay with ducked
// music. Unpause keys are routed by the platform layer since the frame clock
// is stopped here.
type pauseHandler struct {
	ctx *Context
}

func (h *pauseHandler) Attach(ctx *Context) {
	h.ctx = ctx
}

func (h *pauseHandler) Enter() {
	h.ctx.stopLoop()
	h.ctx.showMenu(MenuPause)
	if h.ctx.Audio != nil {
		h.ctx.Audio.Duck(pauseDuckFactor)
	}
}

func (h *pauseHandler) Exit() {
	h.ctx.hideMenus()
	if h.ctx.Audio != nil {
		h.ctx.Audio.Restore()
	}
}

func (h *pauseHandler) Update(dt time.Duration) {}

func (h *pauseHandler) Render(s *core.Screen) {
	// The paused world stays visible behind the overlay
	if h.ctx.World != nil {
		h.ctx.World.Render(s)
	}
	if b := h.ctx.Battles; b != nil && b.Active() {
		b.Render(s)
	}
}
