package scene

import (
	"math"
	"testing"
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/audio"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/battle"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/config"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/cutscene"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/world"
)

type fakeUI struct {
	visible []MenuID
}

func (u *fakeUI) ShowMenu(id MenuID) {
	u.visible = append(u.visible, id)
}

func (u *fakeUI) HideAllMenus() {
	u.visible = nil
}

func (u *fakeUI) showing(id MenuID) bool {
	for _, v := range u.visible {
		if v == id {
			return true
		}
	}
	return false
}

type fakeStats struct {
	battles []string // "id/outcome"
	runs    int
}

func (s *fakeStats) RecordRun(distance, coins, battles int, duration time.Duration) error {
	s.runs++
	return nil
}

func (s *fakeStats) RecordBattle(encounterID, outcome string) error {
	s.battles = append(s.battles, encounterID+"/"+outcome)
	return nil
}

type fakeLoop struct {
	running bool
}

func (l *fakeLoop) Start() { l.running = true }
func (l *fakeLoop) Stop()  { l.running = false }

// testSession wires a full context over fakes plus a real mixer, ducker,
// world, battle machine and cutscene player.
type testSession struct {
	machine *Machine
	ctx     *Context
	loop    *fakeLoop
	ui      *fakeUI
	mixer   *audio.Mixer
	stats   *fakeStats
	world   *world.World
	battles *battle.Machine
}

func newTestSession(t *testing.T) *testSession {
	t.Helper()

	cfg := config.DefaultGameConfig()
	cfg.World = config.WorldConfig{CoinEvery: 10, EncounterEvery: 50, CutsceneAt: 0}

	s := &testSession{
		machine: NewMachine(),
		loop:    &fakeLoop{},
		ui:      &fakeUI{},
		mixer:   audio.NewMixer(),
		stats:   &fakeStats{},
		world:   world.New(cfg),
		battles: battle.NewMachine(),
	}
	s.mixer.SetMusicVolume(0.8)

	s.ctx = &Context{
		Clock:       s.loop,
		Audio:       audio.NewDucker(s.mixer),
		Music:       s.mixer,
		UI:          s.ui,
		Input:       core.NewInput(),
		Cutscene:    cutscene.NewPlayer(),
		World:       s.world,
		Battles:     s.battles,
		Stats:       s.stats,
		MusicVolume: 0.8,
		Runtime:     core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
	}

	s.machine.Attach(s.ctx)
	s.machine.Start()
	return s
}

func TestMenuEnterSideEffects(t *testing.T) {
	s := newTestSession(t)

	if s.loop.running {
		t.Error("Menu should stop the loop")
	}
	if !s.ui.showing(MenuTitle) {
		t.Error("Menu should show the title overlay")
	}
	if s.mixer.NowPlaying() != audio.TrackTitle {
		t.Errorf("NowPlaying() = %q, expected title music", s.mixer.NowPlaying())
	}
}

func TestPlayEnterSideEffects(t *testing.T) {
	s := newTestSession(t)

	s.machine.Transition(ModePlay)

	if !s.loop.running {
		t.Error("Play should start the loop")
	}
	if len(s.ui.visible) != 0 {
		t.Errorf("Menus still visible after entering play: %v", s.ui.visible)
	}
	if s.mixer.NowPlaying() != audio.TrackLevel {
		t.Errorf("NowPlaying() = %q, expected level music", s.mixer.NowPlaying())
	}
}

func TestPauseRoundTripRestoresVolume(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)
	before := s.mixer.MusicVolume()

	s.machine.Transition(ModePause)

	if !s.ui.showing(MenuPause) {
		t.Error("Pause should show the pause overlay")
	}
	if s.loop.running {
		t.Error("Pause should stop the loop")
	}
	if got := s.mixer.MusicVolume(); math.Abs(got-before*pauseDuckFactor) > 1e-9 {
		t.Errorf("Paused volume = %v, expected %v", got, before*pauseDuckFactor)
	}

	s.machine.Transition(ModePlay)

	if got := s.mixer.MusicVolume(); math.Abs(got-before) > 1e-9 {
		t.Errorf("Volume after unpause = %v, expected %v", got, before)
	}
	if !s.loop.running {
		t.Error("Unpausing should restart the loop")
	}
}

func TestRepeatedPauseDoesNotDriftVolume(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)
	before := s.mixer.MusicVolume()

	for i := 0; i < 50; i++ {
		s.machine.Transition(ModePause)
		if got := s.mixer.MusicVolume(); math.Abs(got-before*pauseDuckFactor) > 1e-9 {
			t.Fatalf("Cycle %d: paused volume = %v, expected %v", i, got, before*pauseDuckFactor)
		}
		s.machine.Transition(ModePlay)
		if got := s.mixer.MusicVolume(); math.Abs(got-before) > 1e-9 {
			t.Fatalf("Cycle %d: resumed volume = %v, expected %v", i, got, before)
		}
	}
}

func TestPauseResumesRunInProgress(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)

	// Run for a while
	for i := 0; i < 120; i++ {
		s.machine.Update(time.Second / 60)
	}
	distance := s.world.Distance()
	if distance == 0 {
		t.Fatal("Run should have advanced")
	}

	s.machine.Transition(ModePause)
	s.machine.Transition(ModePlay)

	if s.world.Distance() != distance {
		t.Errorf("Distance after unpause = %d, expected resume at %d", s.world.Distance(), distance)
	}
}

func TestMenuToPlayStartsFreshRun(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)
	for i := 0; i < 120; i++ {
		s.machine.Update(time.Second / 60)
	}

	s.machine.Transition(ModeMenu)
	s.machine.Transition(ModePlay)

	if s.world.Distance() != 0 {
		t.Errorf("Distance after a fresh start = %d, expected 0", s.world.Distance())
	}
}

func TestEscapeDuringPlayPauses(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)

	s.ctx.Input.Press(core.KeyEscape)
	s.machine.Update(time.Second / 60)

	if s.machine.Mode() != ModePause {
		t.Errorf("Mode() = %v, expected pause", s.machine.Mode())
	}
}

func TestPlayHostsBattle(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)
	beforeDist := s.world.Distance()

	s.battles.Queue(battle.Definition{ID: "zone1"})
	s.battles.Start(nil)

	// The battle owns the frame: a full second passes without the world moving
	for i := 0; i < 60; i++ {
		s.machine.Update(time.Second / 60)
	}
	if s.world.Distance() != beforeDist {
		t.Error("World advanced while a battle was active")
	}

	// Winning hands the frame back and records the outcome
	s.ctx.Input.Press(core.KeyInteract)
	s.machine.Update(time.Second / 60)

	if s.battles.Active() {
		t.Fatal("Battle should be resolved")
	}
	if len(s.stats.battles) != 1 || s.stats.battles[0] != "zone1/win" {
		t.Errorf("Recorded battles = %v, expected [zone1/win]", s.stats.battles)
	}
	if s.mixer.NowPlaying() != audio.TrackLevel {
		t.Errorf("NowPlaying() = %q, expected level music after the battle", s.mixer.NowPlaying())
	}

	for i := 0; i < 30; i++ {
		s.machine.Update(time.Second / 60)
	}
	if s.world.Distance() == beforeDist {
		t.Error("World should advance again after the battle resolves")
	}
}

func TestPauseDuringBattleKeepsBaseline(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)
	before := s.mixer.MusicVolume()

	s.battles.Start(nil)
	s.machine.Transition(ModePause)
	s.machine.Transition(ModePlay)

	if got := s.mixer.MusicVolume(); math.Abs(got-before) > 1e-9 {
		t.Errorf("Volume = %v after pause during battle, expected %v", got, before)
	}
	if !s.battles.Active() {
		t.Error("Pause must not resolve the battle")
	}
}

func TestCutsceneDucksAndRestores(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)
	before := s.mixer.MusicVolume()

	s.ctx.NextCutscene = "intro"
	s.machine.Transition(ModeCutscene)

	if !s.loop.running {
		t.Error("Cutscene mode should keep the loop running")
	}
	if got := s.mixer.MusicVolume(); math.Abs(got-before*cutsceneDuckFactor) > 1e-9 {
		t.Errorf("Cutscene volume = %v, expected %v", got, before*cutsceneDuckFactor)
	}

	// Escape skips; the next update returns to play and restores volume
	s.ctx.Input.Press(core.KeyEscape)
	s.machine.Update(time.Second / 60)

	if s.machine.Mode() != ModePlay {
		t.Errorf("Mode() = %v, expected play after skipping", s.machine.Mode())
	}
	if got := s.mixer.MusicVolume(); math.Abs(got-before) > 1e-9 {
		t.Errorf("Volume after cutscene = %v, expected %v", got, before)
	}
}

func TestCutsceneFinishesNaturally(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)
	distance := s.world.Distance()

	s.ctx.NextCutscene = "intro"
	s.machine.Transition(ModeCutscene)

	// The intro script is a few seconds long; play it out
	for i := 0; i < 600 && s.machine.Mode() == ModeCutscene; i++ {
		s.machine.Update(time.Second / 60)
	}

	if s.machine.Mode() != ModePlay {
		t.Fatalf("Mode() = %v, expected play after the script ended", s.machine.Mode())
	}
	if s.world.Distance() != distance {
		t.Error("The world must not advance during a cutscene")
	}
}

func TestRunOverRecordsRunAndShowsGameOver(t *testing.T) {
	s := newTestSession(t)

	// Obstacles every 5 cells and one-hit health end the run quickly
	cfg := config.DefaultGameConfig()
	cfg.World = config.WorldConfig{ObstacleEvery: 5}
	cfg.Player.HP = 25
	w := world.New(cfg)
	s.ctx.World = w

	s.machine.Transition(ModePlay)
	for i := 0; i < 600 && !w.Finished(); i++ {
		s.machine.Update(time.Second / 60)
	}

	if !w.Finished() {
		t.Fatal("Run should have ended")
	}
	if s.stats.runs != 1 {
		t.Errorf("Recorded runs = %d, expected 1", s.stats.runs)
	}
	if !s.ui.showing(MenuGameOver) {
		t.Error("Game over overlay should be visible")
	}

	// Interact returns to the title
	s.ctx.Input.Press(core.KeyInteract)
	s.machine.Update(time.Second / 60)
	if s.machine.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", s.machine.Mode())
	}
}

func TestAllCollaboratorsAbsent(t *testing.T) {
	m := NewMachine()
	m.Attach(&Context{Input: core.NewInput()})
	m.Start()

	// Every transition and frame must tolerate missing services
	for _, mode := range []Mode{ModePlay, ModePause, ModePlay, ModeCutscene, ModePlay, ModeMenu} {
		m.Transition(mode)
		m.Update(time.Second / 60)
		m.Render(core.NewScreen(80, 24))
	}

	if m.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", m.Mode())
	}
}

func TestFreshRunDropsAbandonedBattle(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)

	s.battles.Queue(battle.Definition{ID: "zone1"})
	s.battles.Start(nil)

	// Abandon the run mid-battle and start a new one
	s.machine.Transition(ModePause)
	s.machine.Transition(ModeMenu)
	s.machine.Transition(ModePlay)

	if s.battles.Active() {
		t.Fatal("Fresh run inherited an encounter from the previous run")
	}
	if len(s.stats.battles) != 0 {
		t.Errorf("Abandoning a run recorded battles: %v", s.stats.battles)
	}

	// The new run's frames go to the world, not a dead battle
	for i := 0; i < 30; i++ {
		s.machine.Update(time.Second / 60)
	}
	if s.world.Distance() == 0 {
		t.Error("World did not advance on the fresh run")
	}
}

func TestEscapingBattleCostsHealth(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)
	before := s.world.PlayerHP()

	s.battles.Queue(battle.Definition{ID: "zone1"})
	s.battles.Start(nil)
	s.ctx.Input.Press(core.KeyEscape)
	s.machine.Update(time.Second / 60)

	if s.battles.Active() {
		t.Fatal("Battle should be resolved")
	}
	if got := s.world.PlayerHP(); got != before-fleeDamage {
		t.Errorf("PlayerHP() = %d after fleeing, expected %d", got, before-fleeDamage)
	}
	if len(s.stats.battles) != 1 || s.stats.battles[0] != "zone1/escape" {
		t.Errorf("Recorded battles = %v, expected [zone1/escape]", s.stats.battles)
	}
}

func TestFleeingWithLowHealthEndsRun(t *testing.T) {
	s := newTestSession(t)

	cfg := config.DefaultGameConfig()
	cfg.World = config.WorldConfig{} // Nothing spawns
	cfg.Player.HP = fleeDamage
	w := world.New(cfg)
	s.ctx.World = w

	s.machine.Transition(ModePlay)
	s.battles.Start(nil)
	s.ctx.Input.Press(core.KeyEscape)
	s.machine.Update(time.Second / 60)

	if !w.Finished() {
		t.Fatal("Run should end when the parting hit drains all health")
	}
	if s.stats.runs != 1 {
		t.Errorf("Recorded runs = %d, expected 1", s.stats.runs)
	}
	if !s.ui.showing(MenuGameOver) {
		t.Error("Game over overlay should be visible")
	}
}

func TestCoinEventsFlowThroughPlay(t *testing.T) {
	s := newTestSession(t)
	s.machine.Transition(ModePlay)

	// 2 seconds at the default run speed passes the coins at 10, 20 and 30
	for i := 0; i < 120; i++ {
		s.machine.Update(time.Second / 60)
	}

	if s.machine.Mode() != ModePlay {
		t.Fatalf("Mode() = %v, expected play", s.machine.Mode())
	}
	if s.world.Coins() != 3 {
		t.Errorf("Coins() = %d, expected 3", s.world.Coins())
	}
}
