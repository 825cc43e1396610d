package battle

import (
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// Turn progression thresholds. Transitions fire strictly after the threshold
// is exceeded, never at it exactly.
const (
	introDuration      = 500 * time.Millisecond
	playerTurnDuration = 2000 * time.Millisecond
	enemyTurnDuration  = 1500 * time.Millisecond
)

// Machine is the battle state machine for one encounter at a time. It is
// advanced exclusively by the per-frame Update call; nothing blocks or runs
// concurrently.
type Machine struct {
	phase     Phase
	encounter *Encounter
	queued    *Definition
	elapsed   time.Duration
	turnTimer time.Duration

	// HealthSource supplies the player's current HP for the default player
	// party. Nil means unknown; the default of 100 is used.
	HealthSource func() int

	onComplete func(Encounter)
}

// NewMachine creates an idle battle machine.
func NewMachine() *Machine {
	return &Machine{phase: PhaseIdle}
}

// OnComplete registers the completion callback, invoked exactly once per
// encounter when it resolves.
func (m *Machine) OnComplete(fn func(Encounter)) {
	m.onComplete = fn
}

// Queue stages a definition for the next Start call that comes without an
// explicit definition. Last-queued-wins; at most one definition is pending.
func (m *Machine) Queue(def Definition) {
	d := def
	m.queued = &d
}

// Start begins an encounter. The effective definition is the explicit one if
// given, else the queued one, else an empty definition that builds entirely
// from defaults. The queued definition is consumed exactly once.
func (m *Machine) Start(def *Definition) {
	effective := Definition{}
	switch {
	case def != nil:
		effective = *def
	case m.queued != nil:
		effective = *m.queued
	}
	m.queued = nil

	playerHP := 0
	if m.HealthSource != nil {
		playerHP = m.HealthSource()
	}

	m.encounter = buildEncounter(effective, playerHP)
	m.phase = PhaseIntro
	m.elapsed = 0
	m.turnTimer = 0
}

// Reset cancels any active encounter and clears the queue without firing
// the completion callback. Used when the hosting run is abandoned, so a new
// run never inherits a battle from the previous one.
func (m *Machine) Reset() {
	m.phase = PhaseIdle
	m.encounter = nil
	m.queued = nil
	m.elapsed = 0
	m.turnTimer = 0
}

// Resolve finalizes the active encounter with the given outcome. No-op when
// no encounter is active, so a second Resolve (or one after escape-cancel)
// cannot fire the callback again.
func (m *Machine) Resolve(outcome Outcome) {
	if m.encounter == nil {
		return
	}

	m.encounter.Outcome = outcome
	m.phase = PhaseResolved
	m.elapsed = 0
	m.turnTimer = 0

	finished := *m.encounter
	m.encounter = nil

	if m.onComplete != nil {
		m.onComplete(finished)
	}
}

// Update advances the encounter by dt. Input triggers are checked before any
// timer-based transition: interact resolves a win, escape resolves a flee.
// Player input always preempts automatic turn advancement.
func (m *Machine) Update(dt time.Duration, input *core.Input) {
	if m.encounter == nil {
		return
	}

	m.elapsed += dt
	m.turnTimer += dt

	if input.ConsumeInteractPress() {
		m.Resolve(OutcomeWin)
		return
	}
	if input.ConsumeKeyPress(core.KeyEscape) {
		m.Resolve(OutcomeEscape)
		return
	}

	switch m.phase {
	case PhaseIntro:
		if m.elapsed > introDuration {
			m.phase = PhasePlayerTurn
			m.turnTimer = 0
		}
	case PhasePlayerTurn:
		if m.turnTimer > playerTurnDuration {
			m.phase = PhaseEnemyTurn
			m.turnTimer = 0
		}
	case PhaseEnemyTurn:
		if m.turnTimer > enemyTurnDuration {
			m.phase = PhasePlayerTurn
			m.turnTimer = 0
		}
	}
}

// Active reports whether an encounter is in progress.
func (m *Machine) Active() bool {
	return m.encounter != nil
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Snapshot returns a read-only copy of the active encounter for rendering
// and HUD code. The second return is false when no encounter is active.
func (m *Machine) Snapshot() (Encounter, bool) {
	if m.encounter == nil {
		return Encounter{}, false
	}
	return m.encounter.snapshot(), true
}

// Render draws the battle overlay. It is a pure read of the machine state;
// nothing here mutates phase, timers or the encounter.
func (m *Machine) Render(s *core.Screen) {
	if m.encounter == nil {
		return
	}

	box := core.NewRect(s.Width()/2-18, s.Height()/2-5, 36, 10)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightRed)
	s.DrawTextCenteredColored(box.Y+1, "BATTLE: "+m.encounter.ID, core.ColorBrightYellow)

	switch m.phase {
	case PhaseIntro:
		s.DrawTextCentered(box.Y+3, "An enemy appears!")
	case PhasePlayerTurn:
		s.DrawTextCenteredColored(box.Y+3, "Your turn", core.ColorBrightGreen)
	case PhaseEnemyTurn:
		s.DrawTextCenteredColored(box.Y+3, "Enemy turn", core.ColorBrightRed)
	}

	y := box.Y + 5
	for _, c := range m.encounter.PlayerParty {
		s.DrawTextColored(box.X+2, y, hpLine(c), core.ColorGreen)
		y++
	}
	for _, c := range m.encounter.EnemyParty {
		s.DrawTextColored(box.X+2, y, hpLine(c), core.ColorRed)
		y++
	}

	s.DrawTextCenteredColored(box.Bottom()-2, "[E] attack   [Esc] flee", core.ColorGray)
}

func hpLine(c Combatant) string {
	line := c.Kind + " "
	bars := core.Clamp(c.HP/10, 1, 20)
	for i := 0; i < bars; i++ {
		line += "♥"
	}
	return line
}
