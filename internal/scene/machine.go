package scene

import (
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// Handler is the behavior attached to one mode. Handlers are stateless
// across transitions except for fields reset on Enter.
type Handler interface {
	// Attach binds the shared context before first use.
	Attach(ctx *Context)
	// Enter runs the mode's entry side effects.
	Enter()
	// Exit runs the mode's exit side effects. Always completes before the
	// next handler's Enter begins.
	Exit()
	// Update advances the mode by dt. Only called while the frame clock
	// runs.
	Update(dt time.Duration)
	// Render draws the mode. Must not mutate state.
	Render(s *core.Screen)
}

// Machine is the top-level scene state machine. It owns the current mode,
// delegates the frame to the active handler and sequences the enter/exit
// side effects on every transition. It performs no per-frame logic itself.
//
// The machine is single-threaded and not reentrant: triggering a transition
// from within another transition's exit/enter hooks is a contract violation
// and is dropped with a warning.
type Machine struct {
	ctx      *Context
	mode     Mode
	prev     Mode
	handlers map[Mode]Handler
	current  Handler

	attached      bool
	started       bool
	transitioning bool
}

// NewMachine creates a machine with the standard handler per mode, starting
// in the menu. Attach and Start must be called before use.
func NewMachine() *Machine {
	m := &Machine{
		mode: ModeMenu,
		prev: ModeMenu,
		handlers: map[Mode]Handler{
			ModeMenu:     &menuHandler{},
			ModePlay:     &playHandler{},
			ModePause:    &pauseHandler{},
			ModeCutscene: &cutsceneHandler{},
		},
	}
	m.current = m.handlers[ModeMenu]
	return m
}

// Attach binds the context façade to all handlers before first use.
// Idempotent; repeated calls are ignored.
func (m *Machine) Attach(ctx *Context) {
	if m.attached {
		return
	}
	m.attached = true
	m.ctx = ctx
	ctx.Scenes = m
	for _, h := range m.handlers {
		h.Attach(ctx)
	}
}

// Start enters the initial mode once. Separate from Attach so the session
// owner controls when the first entry side effects fire.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.current.Enter()
}

// Transition switches to the given mode. Requesting the current mode is a
// silent no-op. Otherwise the current handler's Exit runs to completion
// before the new handler's Enter begins; this ordering is what prevents
// double-ducked audio and a double-started loop.
func (m *Machine) Transition(to Mode) {
	if to == m.mode {
		return
	}
	if m.transitioning {
		if m.ctx != nil {
			m.ctx.logWarn("transition requested during transition, dropped", "to", to)
		}
		return
	}

	m.transitioning = true
	m.current.Exit()

	m.prev = m.mode
	m.mode = to
	m.current = m.handlers[to]

	m.current.Enter()
	m.transitioning = false

	if m.ctx != nil {
		m.ctx.logDebug("mode changed", "from", m.prev, "to", m.mode)
		if m.ctx.Input != nil {
			// Presses aimed at the old mode must not leak into the new one
			m.ctx.Input.Clear()
		}
	}
}

// Update forwards the frame to the current handler.
func (m *Machine) Update(dt time.Duration) {
	m.current.Update(dt)
}

// Render forwards rendering to the current handler.
func (m *Machine) Render(s *core.Screen) {
	m.current.Render(s)
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// PreviousMode returns the mode that was active before the last transition.
// Play uses it to distinguish a fresh run (from the menu) from a resume
// (from pause or a cutscene).
func (m *Machine) PreviousMode() Mode {
	return m.prev
}
