package scene

import (
	"fmt"
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/audio"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/battle"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/world"
)

// fleeDamage is the health cost of escaping a battle.
const fleeDamage = 10

// playHandler runs the simulation and hosts the battle machine. While an
// encounter is active the battle owns the frame; the world is suspended.
type playHandler struct {
	ctx     *Context
	elapsed time.Duration // Game clock for the current run
	battles int           // Encounters resolved this run
}

func (h *playHandler) Attach(ctx *Context) {
	h.ctx = ctx
	if b := ctx.Battles; b != nil {
		if ctx.World != nil {
			b.HealthSource = ctx.World.PlayerHP
		}
		b.OnComplete(h.onBattleComplete)
	}
}

func (h *playHandler) Enter() {
	// A fresh run starts from the menu; arriving from pause or a cutscene
	// resumes the run in progress.
	fresh := true
	if h.ctx.Scenes != nil {
		prev := h.ctx.Scenes.PreviousMode()
		fresh = prev != ModePause && prev != ModeCutscene
	}
	if fresh {
		h.elapsed = 0
		h.battles = 0
		if b := h.ctx.Battles; b != nil {
			// An encounter abandoned mid-run must not leak into this one
			b.Reset()
		}
		if h.ctx.World != nil {
			h.ctx.World.Reset(h.ctx.Runtime)
		}
		if h.ctx.Audio != nil {
			// No duck survives into a fresh run
			h.ctx.Audio.Restore()
		}
	}

	h.ctx.hideMenus()
	h.ctx.startLoop()
	h.ctx.playMusic(audio.TrackLevel)
}

func (h *playHandler) Exit() {
	h.ctx.stopLoop()
}

func (h *playHandler) Update(dt time.Duration) {
	h.elapsed += dt

	// An active battle owns the frame
	if b := h.ctx.Battles; b != nil && b.Active() {
		b.Update(dt, h.ctx.Input)
		return
	}

	if h.ctx.Input.ConsumeKeyPress(core.KeyEscape) {
		if h.ctx.Scenes != nil {
			h.ctx.Scenes.Transition(ModePause)
		}
		return
	}

	if h.ctx.World == nil {
		return
	}

	if h.ctx.World.Finished() {
		if h.ctx.Input.ConsumeInteractPress() && h.ctx.Scenes != nil {
			h.ctx.Scenes.Transition(ModeMenu)
		}
		return
	}

	for _, ev := range h.ctx.World.Update(dt, h.ctx.Input) {
		h.handleWorldEvent(ev)
	}
}

func (h *playHandler) handleWorldEvent(ev world.Event) {
	switch ev := ev.(type) {
	case world.CoinCollectedEvent:
		h.ctx.logDebug("coin collected", "total", ev.Total)

	case world.EncounterEvent:
		b := h.ctx.Battles
		if b == nil {
			return
		}
		b.Queue(battle.Definition{
			ID:         ev.ID,
			EnemyParty: []battle.Combatant{{Kind: ev.EnemyKind, HP: ev.EnemyHP}},
		})
		b.Start(nil)
		if enc, ok := b.Snapshot(); ok {
			h.ctx.playMusic(enc.Music)
		}
		h.ctx.logInfo("encounter started", "id", ev.ID, "enemy", ev.EnemyKind)

	case world.CutsceneEvent:
		if h.ctx.Cutscene == nil || h.ctx.Scenes == nil {
			return
		}
		h.ctx.NextCutscene = ev.ID
		h.ctx.Scenes.Transition(ModeCutscene)

	case world.RunOverEvent:
		h.finishRun(ev.Distance, ev.Coins)
		h.ctx.showMenu(MenuGameOver)
	}
}

// onBattleComplete is the battle machine's completion callback: persist the
// outcome and hand the frame back to the world.
func (h *playHandler) onBattleComplete(enc battle.Encounter) {
	h.battles++
	if h.ctx.Stats != nil {
		if err := h.ctx.Stats.RecordBattle(enc.ID, string(enc.Outcome)); err != nil {
			h.ctx.logWarn("could not record battle", "error", err)
		}
	}
	h.ctx.logInfo("battle resolved", "id", enc.ID, "outcome", enc.Outcome)

	// Escaping is not free: the enemy gets a parting hit, which can end
	// the run outright.
	if enc.Outcome == battle.OutcomeEscape && h.ctx.World != nil {
		h.ctx.World.Hurt(fleeDamage)
		if h.ctx.World.Finished() {
			h.finishRun(h.ctx.World.Distance(), h.ctx.World.Coins())
			h.ctx.showMenu(MenuGameOver)
			return
		}
	}

	h.ctx.playMusic(audio.TrackLevel)
}

func (h *playHandler) finishRun(distance, coins int) {
	if h.ctx.Stats != nil {
		if err := h.ctx.Stats.RecordRun(distance, coins, h.battles, h.elapsed); err != nil {
			h.ctx.logWarn("could not record run", "error", err)
		}
	}
	h.ctx.logInfo("run over", "distance", distance, "coins", coins, "battles", h.battles)
}

func (h *playHandler) Render(s *core.Screen) {
	if h.ctx.World != nil {
		h.ctx.World.Render(s)
		h.drawHUD(s)
	}
	if b := h.ctx.Battles; b != nil && b.Active() {
		b.Render(s)
	}
}

func (h *playHandler) drawHUD(s *core.Screen) {
	w := h.ctx.World
	hud := fmt.Sprintf(" %4dm  $%d  HP %d ", w.Distance(), w.Coins(), w.PlayerHP())
	s.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	if w.Finished() {
		s.DrawTextCenteredColored(s.Height()/2, "GAME OVER", core.ColorBrightRed)
		s.DrawTextCenteredColored(s.Height()/2+2, "[E] back to title", core.ColorGray)
	}
}
