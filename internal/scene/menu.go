package scene

import (
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/audio"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// menuHandler is the title screen mode. The frame clock is stopped here;
// navigation is handled by the platform layer via transitions.
type menuHandler struct {
	ctx *Context
}

func (h *menuHandler) Attach(ctx *Context) {
	h.ctx = ctx
}

func (h *menuHandler) Enter() {
	h.ctx.stopLoop()
	h.ctx.showMenu(MenuTitle)
	h.ctx.playMusic(audio.TrackTitle)
}

func (h *menuHandler) Exit() {
	h.ctx.hideMenus()
}

func (h *menuHandler) Update(dt time.Duration) {}

func (h *menuHandler) Render(s *core.Screen) {
	third := s.Height() / 3
	s.DrawTextCenteredColored(third, "L U C K I E   R U N N E R", core.ColorBrightYellow)
	s.DrawTextCenteredColored(third+2, "run, jump, fight", core.ColorGray)
}
