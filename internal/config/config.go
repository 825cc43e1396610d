// Package config provides YAML-based game configuration loading for the
// runner. Physics and world pacing are data; the mode controller's timings
// are fixed constants and deliberately not configurable.
package config

// GameConfig contains all tunable parameters for a run.
type GameConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	World   WorldConfig   `yaml:"world"`
	Audio   AudioConfig   `yaml:"audio"`
}

// PhysicsConfig defines the runner's movement parameters.
// Velocities are in cells per second.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
}

// PlayerConfig defines the player's screen placement and starting health.
type PlayerConfig struct {
	X  int `yaml:"x"`  // Fixed horizontal screen position
	HP int `yaml:"hp"` // Starting health, carried into battle defaults
}

// WorldConfig defines world pacing in distance cells.
type WorldConfig struct {
	CoinEvery      int `yaml:"coin_every"`      // Distance between coins
	ObstacleEvery  int `yaml:"obstacle_every"`  // Distance between obstacles
	EncounterEvery int `yaml:"encounter_every"` // Distance between battle triggers
	CutsceneAt     int `yaml:"cutscene_at"`     // Distance of the one scripted cutscene
}

// AudioConfig defines baseline music volume.
type AudioConfig struct {
	MusicVolume float64 `yaml:"music_volume"`
}

// DefaultGameConfig returns the hardcoded default configuration, used when
// neither a config file nor the embedded default can be read.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:      60.0,
			JumpImpulse:  -22.0,
			MaxFallSpeed: 40.0,
			RunSpeed:     18.0,
		},
		Player: PlayerConfig{
			X:  10,
			HP: 100,
		},
		World: WorldConfig{
			CoinEvery:      23,
			ObstacleEvery:  37,
			EncounterEvery: 150,
			CutsceneAt:     60,
		},
		Audio: AudioConfig{
			MusicVolume: 0.8,
		},
	}
}
