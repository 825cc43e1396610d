package scene

import (
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// cutsceneHandler delegates the whole frame to the external cutscene player.
// The clock keeps running so the player can advance; music is ducked under
// the scripted text.
type cutsceneHandler struct {
	ctx *Context
}

func (h *cutsceneHandler) Attach(ctx *Context) {
	h.ctx = ctx
}

func (h *cutsceneHandler) Enter() {
	h.ctx.startLoop()
	if h.ctx.Audio != nil {
		h.ctx.Audio.Duck(cutsceneDuckFactor)
	}
	if h.ctx.Cutscene != nil {
		h.ctx.Cutscene.Play(h.ctx.NextCutscene)
	}
}

func (h *cutsceneHandler) Exit() {
	if h.ctx.Audio != nil {
		h.ctx.Audio.Restore()
	}
}

func (h *cutsceneHandler) Update(dt time.Duration) {
	if h.ctx.Cutscene == nil {
		if h.ctx.Scenes != nil {
			h.ctx.Scenes.Transition(ModePlay)
		}
		return
	}

	if h.ctx.Input.ConsumeKeyPress(core.KeyEscape) {
		h.ctx.Cutscene.Skip()
	}

	h.ctx.Cutscene.Update(dt)

	if h.ctx.Cutscene.Done() && h.ctx.Scenes != nil {
		h.ctx.Scenes.Transition(ModePlay)
	}
}

func (h *cutsceneHandler) Render(s *core.Screen) {
	// The frozen world stays visible behind the scripted text
	if h.ctx.World != nil {
		h.ctx.World.Render(s)
	}
	if h.ctx.Cutscene != nil {
		h.ctx.Cutscene.Render(s)
	}
}
