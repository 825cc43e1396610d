// Package world implements the side-scrolling run simulation hosted by Play
// mode. The mode controller only forwards update/render here; nothing in
// this package knows about scenes or battles beyond emitting trigger events.
package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/config"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// Visual characters for rendering.
const (
	playerChar   = '▶'
	coinChar     = 'o'
	obstacleChar = '▲'
	groundChar   = '═'
)

// obstacleDamage is taken when running into an obstacle on the ground.
const obstacleDamage = 25

var enemyKinds = []string{"Slime", "Bat", "Wolf", "Golem"}

// World is the run state: an auto-running player, coins, obstacles and
// trigger zones laid out by distance.
type World struct {
	cfg config.GameConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	playerY   float64 // Top of player, screen rows
	playerVel float64 // Vertical velocity, rows per second
	distance  float64 // World cells travelled
	coins     int
	hp        int

	started       bool
	over          bool
	cutsceneFired bool
	encounterSeq  int
}

// New creates a world with the given game configuration. Reset must be
// called before the first Update.
func New(cfg config.GameConfig) *World {
	return &World{cfg: cfg}
}

// Reset starts a fresh run.
func (w *World) Reset(rt core.RuntimeConfig) {
	w.rt = rt
	w.rng = rand.New(rand.NewSource(rt.Seed))
	w.playerY = float64(w.groundY())
	w.playerVel = 0
	w.distance = 0
	w.coins = 0
	w.hp = w.cfg.Player.HP
	w.started = true
	w.over = false
	w.cutsceneFired = false
	w.encounterSeq = 0
}

// groundY is the row the player stands on.
func (w *World) groundY() int {
	return w.rt.ScreenH - 3
}

func (w *World) grounded() bool {
	return w.playerY >= float64(w.groundY())-0.5
}

// Update advances the run by dt and returns the events that occurred.
// No-op once the run is over.
func (w *World) Update(dt time.Duration, in *core.Input) []Event {
	if !w.started || w.over {
		return nil
	}

	var events []Event
	sec := dt.Seconds()

	// Jump
	if in.ConsumeKeyPress(core.KeyJump) && w.grounded() {
		w.playerVel = w.cfg.Physics.JumpImpulse
	}

	// Vertical physics
	w.playerVel += w.cfg.Physics.Gravity * sec
	if w.playerVel > w.cfg.Physics.MaxFallSpeed {
		w.playerVel = w.cfg.Physics.MaxFallSpeed
	}
	w.playerY += w.playerVel * sec
	if w.playerY > float64(w.groundY()) {
		w.playerY = float64(w.groundY())
		w.playerVel = 0
	}

	// Auto-run
	prev := w.distance
	w.distance += w.cfg.Physics.RunSpeed * sec

	// Coins are collected by passing them
	for _, at := range crossings(prev, w.distance, w.cfg.World.CoinEvery) {
		_ = at
		w.coins++
		events = append(events, CoinCollectedEvent{Total: w.coins})
	}

	// Obstacles hurt unless airborne
	for range crossings(prev, w.distance, w.cfg.World.ObstacleEvery) {
		if !w.grounded() {
			continue
		}
		w.hp -= obstacleDamage
		if w.hp <= 0 {
			w.hp = 0
			w.over = true
			events = append(events, RunOverEvent{Distance: int(w.distance), Coins: w.coins})
			return events
		}
	}

	// Battle trigger zones
	for range crossings(prev, w.distance, w.cfg.World.EncounterEvery) {
		w.encounterSeq++
		kind := enemyKinds[w.rng.Intn(len(enemyKinds))]
		events = append(events, EncounterEvent{
			ID:        fmt.Sprintf("zone%d", w.encounterSeq),
			EnemyKind: kind,
			EnemyHP:   10 + 10*w.encounterSeq,
		})
	}

	// One scripted cutscene per run
	if !w.cutsceneFired && w.cfg.World.CutsceneAt > 0 &&
		prev < float64(w.cfg.World.CutsceneAt) && w.distance >= float64(w.cfg.World.CutsceneAt) {
		w.cutsceneFired = true
		events = append(events, CutsceneEvent{ID: "intro"})
	}

	return events
}

// crossings returns the item positions at multiples of every that the
// interval (from, to] passed over. every <= 0 disables the item type.
func crossings(from, to float64, every int) []int {
	if every <= 0 {
		return nil
	}
	var out []int
	first := (int(from) / every) + 1
	for at := first * every; float64(at) <= to; at += every {
		if float64(at) > from {
			out = append(out, at)
		}
	}
	return out
}

// Hurt applies external damage to the player, e.g. a lost battle.
func (w *World) Hurt(amount int) {
	if !w.started || w.over {
		return
	}
	w.hp -= amount
	if w.hp <= 0 {
		w.hp = 0
		w.over = true
	}
}

// PlayerHP returns the player's current health. Used to seed battle parties.
func (w *World) PlayerHP() int {
	return w.hp
}

// Started reports whether a run is in progress or finished.
func (w *World) Started() bool {
	return w.started
}

// Finished reports whether the current run has ended.
func (w *World) Finished() bool {
	return w.over
}

// Distance returns the whole cells travelled this run.
func (w *World) Distance() int {
	return int(w.distance)
}

// Coins returns the coins collected this run.
func (w *World) Coins() int {
	return w.coins
}

// Render draws the world into the screen buffer. Pure read.
func (w *World) Render(s *core.Screen) {
	if !w.started {
		return
	}

	groundY := w.groundY()
	s.DrawHLine(0, groundY+1, s.Width(), groundChar, core.ColorGray)

	// Upcoming coins and obstacles within the view
	drawItems := func(every int, r rune, c core.Color) {
		if every <= 0 {
			return
		}
		first := (int(w.distance)/every + 1) * every
		for at := first; float64(at) < w.distance+float64(s.Width()); at += every {
			x := w.cfg.Player.X + int(float64(at)-w.distance)
			s.SetCell(x, groundY, r, c)
		}
	}
	drawItems(w.cfg.World.CoinEvery, coinChar, core.ColorBrightYellow)
	drawItems(w.cfg.World.ObstacleEvery, obstacleChar, core.ColorBrightRed)

	s.SetCell(w.cfg.Player.X, int(w.playerY+0.5), playerChar, core.ColorBrightCyan)
}
