package world

// Event is a notification emitted by the simulation for the owning scene to
// act on. The sealed interface keeps the set of variants closed.
type Event interface {
	worldEvent()
}

// CoinCollectedEvent fires when the player passes over a coin.
type CoinCollectedEvent struct {
	Total int
}

func (CoinCollectedEvent) worldEvent() {}

// EncounterEvent fires when the player crosses a battle trigger zone.
type EncounterEvent struct {
	ID        string
	EnemyKind string
	EnemyHP   int
}

func (EncounterEvent) worldEvent() {}

// CutsceneEvent fires when the player reaches a scripted cutscene point.
type CutsceneEvent struct {
	ID string
}

func (CutsceneEvent) worldEvent() {}

// RunOverEvent fires when the player's health reaches zero.
type RunOverEvent struct {
	Distance int
	Coins    int
}

func (RunOverEvent) worldEvent() {}
