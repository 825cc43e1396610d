package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/audio"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/battle"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/config"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/cutscene"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/engine"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/scene"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/storage"
	"github.com/mso-docs/Luckie-Runner-sub002/internal/world"
)

// Model is the Bubble Tea model hosting one runner session. It owns the
// mode controller and its collaborators; Bubble Tea messages are translated
// into key presses and frame ticks.
type Model struct {
	machine *scene.Machine
	ctx     *scene.Context

	clock   *engine.Clock
	screen  *core.Screen
	input   *core.Input
	mixer   *audio.Mixer
	overlay *Overlay
	keys    *KeyMapper

	quitting bool
}

// NewModel creates a session model. store and logger may be nil; the session
// then runs without persistence or logging.
func NewModel(rt core.RuntimeConfig, game config.GameConfig, store *storage.Store, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	m := Model{
		machine: scene.NewMachine(),
		clock:   engine.NewClock(),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		input:   core.NewInput(),
		mixer:   audio.NewMixer(),
		overlay: NewOverlay(),
		keys:    NewKeyMapper(),
	}

	ctx := &scene.Context{
		Clock:       m.clock,
		Audio:       audio.NewDucker(m.mixer),
		Music:       m.mixer,
		UI:          m.overlay,
		Input:       m.input,
		Cutscene:    cutscene.NewPlayer(),
		World:       world.New(game),
		Battles:     battle.NewMachine(),
		Log:         logger,
		MusicVolume: game.Audio.MusicVolume,
		Runtime:     rt,
	}
	if store != nil {
		ctx.Stats = store
	}

	m.ctx = ctx
	m.machine.Attach(ctx)
	return m
}

// Init enters the title screen and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.machine.Start()
	return tickCmd(m.ctx.Runtime.TickRate)
}

// Update handles messages and updates the session state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.ctx.Runtime.ScreenW = msg.Width
		m.ctx.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey routes keyboard input. Mode transitions triggered while the
// frame clock is stopped (title, pause) must happen here, since no Update
// frame will run to consume a press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapSessionAction(msg)

	if action == SessionActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.machine.Mode() {
	case scene.ModeMenu:
		if action == SessionActionConfirm {
			m.machine.Transition(scene.ModePlay)
		}

	case scene.ModePause:
		switch action {
		case SessionActionPause, SessionActionConfirm:
			m.machine.Transition(scene.ModePlay)
		case SessionActionTitle:
			m.machine.Transition(scene.ModeMenu)
		default:
			if m.keys.MapKey(msg) == core.KeyEscape {
				m.machine.Transition(scene.ModePlay)
			}
		}

	case scene.ModePlay:
		if action == SessionActionPause {
			m.machine.Transition(scene.ModePause)
			return m, nil
		}
		if k := m.keys.MapKey(msg); k != "" {
			m.input.Press(k)
		}

	case scene.ModeCutscene:
		if k := m.keys.MapKey(msg); k != "" {
			m.input.Press(k)
		}
	}

	return m, nil
}

// handleTick advances the session by one frame while the clock runs. Ticking
// continues regardless so the view stays live across stopped modes.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.clock.Running() {
		dt := tickInterval(m.ctx.Runtime.TickRate)
		m.clock.Advance(dt)
		m.machine.Update(dt)
	}
	return m, tickCmd(m.ctx.Runtime.TickRate)
}

// View renders the active mode, the overlay and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.machine.Render(m.screen)
	m.overlay.Render(m.screen)
	m.drawStatusLine()

	return RenderScreen(m.screen)
}

// drawStatusLine shows the simulated music state in the bottom row, which
// makes volume ducking visible in a terminal without an audio device.
func (m Model) drawStatusLine() {
	if m.mixer.NowPlaying() == "" {
		return
	}
	status := fmt.Sprintf("♪ %s  vol %.2f", m.mixer.NowPlaying(), m.mixer.MusicVolume())
	m.screen.DrawTextColored(1, m.screen.Height()-1, status, core.ColorGray)
}

// Run starts a local Bubble Tea program for one runner session.
func Run(rt core.RuntimeConfig, game config.GameConfig, store *storage.Store, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(rt, game, store, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
