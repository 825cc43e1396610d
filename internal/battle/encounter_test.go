package battle

import (
	"testing"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/audio"
)

func TestBuildEncounterDefaults(t *testing.T) {
	tests := []struct {
		name     string
		def      Definition
		playerHP int
		check    func(t *testing.T, enc *Encounter)
	}{
		{
			name: "empty definition",
			def:  Definition{},
			check: func(t *testing.T, enc *Encounter) {
				if enc.ID != "unknown" {
					t.Errorf("ID = %q, expected unknown", enc.ID)
				}
				if enc.Music != audio.TrackBattle {
					t.Errorf("Music = %q, expected battle theme", enc.Music)
				}
			},
		},
		{
			name:     "player HP carried from world",
			def:      Definition{ID: "zone3"},
			playerHP: 42,
			check: func(t *testing.T, enc *Encounter) {
				if enc.PlayerParty[0].HP != 42 {
					t.Errorf("Player HP = %d, expected 42", enc.PlayerParty[0].HP)
				}
			},
		},
		{
			name:     "non-positive player HP falls back to 100",
			def:      Definition{},
			playerHP: -5,
			check: func(t *testing.T, enc *Encounter) {
				if enc.PlayerParty[0].HP != 100 {
					t.Errorf("Player HP = %d, expected fallback 100", enc.PlayerParty[0].HP)
				}
			},
		},
		{
			name: "explicit parties and music preserved",
			def: Definition{
				ID:          "boss",
				PlayerParty: []Combatant{{Kind: "Luckie", HP: 77}},
				EnemyParty:  []Combatant{{Kind: "Golem", HP: 50}, {Kind: "Bat", HP: 5}},
				Music:       audio.TrackTitle,
			},
			check: func(t *testing.T, enc *Encounter) {
				if len(enc.EnemyParty) != 2 || enc.EnemyParty[0].Kind != "Golem" {
					t.Errorf("EnemyParty = %+v, expected explicit parties", enc.EnemyParty)
				}
				if enc.PlayerParty[0].HP != 77 {
					t.Errorf("Player HP = %d, expected 77", enc.PlayerParty[0].HP)
				}
				if enc.Music != audio.TrackTitle {
					t.Errorf("Music = %q, expected explicit track", enc.Music)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := buildEncounter(tt.def, tt.playerHP)
			tt.check(t, enc)
		})
	}
}

func TestBuildEncounterCopiesParties(t *testing.T) {
	party := []Combatant{{Kind: "Rat", HP: 10}}
	enc := buildEncounter(Definition{EnemyParty: party}, 0)

	party[0].HP = 999
	if enc.EnemyParty[0].HP != 10 {
		t.Error("Encounter should own a copy of the definition parties")
	}
}
