// Package audio provides the music service boundary and reversible volume
// ducking used by the pause and cutscene modes.
package audio

// Track identifies a music track. The core never touches audio data; tracks
// are opaque references resolved by whatever backs the Service.
type Track string

// Tracks referenced by the mode controller.
const (
	TrackTitle  Track = "title"
	TrackLevel  Track = "level"
	TrackBattle Track = "battle"
)

// Service is the music playback boundary. Implementations live outside the
// mode controller; a nil Service is a legal "no audio" configuration and all
// callers must tolerate it.
type Service interface {
	// MusicVolume returns the current music volume in [0, 1].
	MusicVolume() float64

	// SetMusicVolume sets the music volume in [0, 1].
	SetMusicVolume(v float64)

	// PlayMusic switches playback to the given track at the given volume.
	// Playing the track that is already current is a no-op on playback
	// position but still applies the volume.
	PlayMusic(t Track, v float64)
}

// Mixer is an in-process Service. A terminal has no audio device, so the
// mixer only tracks what would be playing; the HUD surfaces it so volume
// ducking stays observable.
type Mixer struct {
	track  Track
	volume float64
}

// NewMixer creates a mixer with full volume and no current track.
func NewMixer() *Mixer {
	return &Mixer{volume: 1.0}
}

// MusicVolume returns the current volume.
func (m *Mixer) MusicVolume() float64 {
	return m.volume
}

// SetMusicVolume sets the current volume, clamped to [0, 1].
func (m *Mixer) SetMusicVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.volume = v
}

// PlayMusic switches the current track and applies the volume.
func (m *Mixer) PlayMusic(t Track, v float64) {
	m.track = t
	m.SetMusicVolume(v)
}

// NowPlaying returns the current track, empty when nothing was played yet.
func (m *Mixer) NowPlaying() Track {
	return m.track
}
