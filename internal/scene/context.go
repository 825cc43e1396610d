package scene

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/audio"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/battle"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/world"
)

// MenuID identifies a UI overlay.
type MenuID string

// Overlays the mode controller shows and hides.
const (
	MenuTitle    MenuID = "title"
	MenuPause    MenuID = "pause"
	MenuGameOver MenuID = "gameover"
)

// LoopControl starts and stops the periodic update cycle. Both operations
// are idempotent.
type LoopControl interface {
	Start()
	Stop()
}

// MenuService shows and hides UI overlays.
type MenuService interface {
	ShowMenu(id MenuID)
	HideAllMenus()
}

// CutscenePlayer is the external player the Cutscene mode delegates to. The
// mode controller never advances cutscene content itself.
type CutscenePlayer interface {
	Play(id string)
	Update(dt time.Duration)
	Skip()
	Done() bool
	Render(s *core.Screen)
}

// StatsRecorder persists run and battle statistics.
type StatsRecorder interface {
	RecordRun(distance, coins, battles int, duration time.Duration) error
	RecordBattle(encounterID, outcome string) error
}

// Controller is the transition surface handlers see of the Machine.
type Controller interface {
	Transition(to Mode)
	Mode() Mode
	PreviousMode() Mode
}

// Context is the façade every scene handler (and, through Play, the battle
// machine) reads and mutates. Every collaborator is optional: a nil field
// means the service is absent and its side effects are skipped. A missing
// collaborator never fails a transition.
type Context struct {
	Clock    LoopControl
	Audio    *audio.Ducker
	Music    audio.Service
	UI       MenuService
	Input    *core.Input
	Cutscene CutscenePlayer
	World    *world.World
	Battles  *battle.Machine
	Stats    StatsRecorder
	Log      *log.Logger

	// MusicVolume is the configured baseline volume for PlayMusic calls.
	MusicVolume float64

	// Runtime carries screen dimensions and seed for world resets.
	Runtime core.RuntimeConfig

	// NextCutscene names the script the Cutscene mode should play.
	// Set by Play before transitioning.
	NextCutscene string

	// Scenes is set by Machine.Attach so handlers can request transitions
	// outside of enter/exit hooks.
	Scenes Controller
}

// Best-effort collaborator calls. Absence is skipped silently, per the error
// handling policy: a missing service must never raise.

func (c *Context) startLoop() {
	if c.Clock != nil {
		c.Clock.Start()
	}
}

func (c *Context) stopLoop() {
	if c.Clock != nil {
		c.Clock.Stop()
	}
}

func (c *Context) showMenu(id MenuID) {
	if c.UI != nil {
		c.UI.ShowMenu(id)
	}
}

func (c *Context) hideMenus() {
	if c.UI != nil {
		c.UI.HideAllMenus()
	}
}

func (c *Context) playMusic(t audio.Track) {
	if c.Music != nil {
		c.Music.PlayMusic(t, c.MusicVolume)
	}
}

func (c *Context) logDebug(msg string, kv ...any) {
	if c.Log != nil {
		c.Log.Debug(msg, kv...)
	}
}

func (c *Context) logInfo(msg string, kv ...any) {
	if c.Log != nil {
		c.Log.Info(msg, kv...)
	}
}

func (c *Context) logWarn(msg string, kv ...any) {
	if c.Log != nil {
		c.Log.Warn(msg, kv...)
	}
}
