// Package battle implements the turn-based state machine for one active
// encounter. Play mode owns a Machine and forwards update/render to it while
// an encounter is active.
package battle

// Phase represents the progression of an encounter.
type Phase int

const (
	// PhaseIdle means no encounter is active and no timers run.
	PhaseIdle Phase = iota
	// PhaseIntro is the short banner shown when an encounter begins.
	PhaseIntro
	// PhasePlayerTurn is the player's window to act.
	PhasePlayerTurn
	// PhaseEnemyTurn is the enemy's window to act.
	PhaseEnemyTurn
	// PhaseResolved is terminal; the encounter outcome has been finalized.
	PhaseResolved
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseIntro:
		return "intro"
	case PhasePlayerTurn:
		return "player turn"
	case PhaseEnemyTurn:
		return "enemy turn"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the final result of an encounter.
type Outcome string

const (
	// OutcomeWin means the player won the encounter.
	OutcomeWin Outcome = "win"
	// OutcomeEscape means the player fled; also used for external
	// cancellation of an in-progress battle.
	OutcomeEscape Outcome = "escape"
)
