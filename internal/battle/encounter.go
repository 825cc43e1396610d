package battle

import "github.com/mso-docs/Luckie-Runner-sub002/internal/audio"

// Combatant is a participant in an encounter. The mode controller only
// cares about identity and hit points; combat math is content, not structure.
type Combatant struct {
	Kind string
	HP   int
}

// Definition is the template an encounter is built from. Any field may be
// left zero; buildEncounter substitutes documented defaults.
type Definition struct {
	ID          string
	PlayerParty []Combatant
	EnemyParty  []Combatant
	Music       audio.Track
}

// Encounter is the live battle value. Owned exclusively by the Machine while
// active; rendering and HUD code get read-only snapshots.
type Encounter struct {
	ID          string
	PlayerParty []Combatant
	EnemyParty  []Combatant
	Music       audio.Track
	Outcome     Outcome // Empty until resolved
}

// Defaults substituted by buildEncounter for missing definition fields.
const (
	defaultEncounterID = "unknown"
	defaultEnemyKind   = "Unknown"
	defaultEnemyHP     = 1
	defaultPlayerKind  = "Luckie"
	defaultPlayerHP    = 100
)

// buildEncounter materializes an encounter from a definition, filling in
// every missing field:
//   - empty ID        -> "unknown"
//   - no player party -> one combatant seeded from playerHP (100 if unknown)
//   - no enemy party  -> one 1-HP "Unknown" combatant
//   - no music        -> the battle theme
//
// Party slices are copied so later definition mutation cannot reach into the
// live encounter.
func buildEncounter(def Definition, playerHP int) *Encounter {
	enc := &Encounter{
		ID:    def.ID,
		Music: def.Music,
	}

	if enc.ID == "" {
		enc.ID = defaultEncounterID
	}

	if len(def.PlayerParty) > 0 {
		enc.PlayerParty = append([]Combatant(nil), def.PlayerParty...)
	} else {
		if playerHP <= 0 {
			playerHP = defaultPlayerHP
		}
		enc.PlayerParty = []Combatant{{Kind: defaultPlayerKind, HP: playerHP}}
	}

	if len(def.EnemyParty) > 0 {
		enc.EnemyParty = append([]Combatant(nil), def.EnemyParty...)
	} else {
		enc.EnemyParty = []Combatant{{Kind: defaultEnemyKind, HP: defaultEnemyHP}}
	}

	if enc.Music == "" {
		enc.Music = audio.TrackBattle
	}

	return enc
}

// snapshot returns a deep copy safe to hand to rendering and HUD code.
func (e *Encounter) snapshot() Encounter {
	cp := *e
	cp.PlayerParty = append([]Combatant(nil), e.PlayerParty...)
	cp.EnemyParty = append([]Combatant(nil), e.EnemyParty...)
	return cp
}
