package scene

import (
	"fmt"
	"testing"
	"time"

	"github.com/mso-docs/Luckie-Runner-sub002/internal/core"
)

// fakeHandler records enter/exit/update calls into a shared log, with
// optional hooks to misbehave on purpose.
type fakeHandler struct {
	name    string
	log     *[]string
	onEnter func()
}

func (h *fakeHandler) Attach(ctx *Context) {}
func (h *fakeHandler) Enter() {
	*h.log = append(*h.log, h.name+".enter")
	if h.onEnter != nil {
		h.onEnter()
	}
}
func (h *fakeHandler) Exit() {
	*h.log = append(*h.log, h.name+".exit")
}
func (h *fakeHandler) Update(dt time.Duration) {
	*h.log = append(*h.log, h.name+".update")
}
func (h *fakeHandler) Render(s *core.Screen) {}

// newFakeMachine builds a machine whose handlers only record call order.
func newFakeMachine(log *[]string) *Machine {
	m := &Machine{
		mode: ModeMenu,
		prev: ModeMenu,
		handlers: map[Mode]Handler{
			ModeMenu:     &fakeHandler{name: "menu", log: log},
			ModePlay:     &fakeHandler{name: "play", log: log},
			ModePause:    &fakeHandler{name: "pause", log: log},
			ModeCutscene: &fakeHandler{name: "cutscene", log: log},
		},
	}
	m.current = m.handlers[ModeMenu]
	return m
}

func TestTransitionExitRunsFullyBeforeEnter(t *testing.T) {
	modes := []Mode{ModeMenu, ModePlay, ModePause, ModeCutscene}

	for _, from := range modes {
		for _, to := range modes {
			if from == to {
				continue
			}
			t.Run(fmt.Sprintf("%v_to_%v", from, to), func(t *testing.T) {
				var log []string
				m := newFakeMachine(&log)
				m.Transition(from) // Position the machine; from == menu is already current
				log = log[:0]

				m.Transition(to)

				if len(log) != 2 {
					t.Fatalf("Call log = %v, expected exactly exit then enter", log)
				}
				if log[0] != from.String()+".exit" {
					t.Errorf("First call = %q, expected %v.exit", log[0], from)
				}
				if log[1] != to.String()+".enter" {
					t.Errorf("Second call = %q, expected %v.enter", log[1], to)
				}
			})
		}
	}
}

func TestTransitionToCurrentModeIsNoop(t *testing.T) {
	var log []string
	m := newFakeMachine(&log)
	m.Transition(ModePlay)
	log = log[:0]

	m.Transition(ModePlay)

	if len(log) != 0 {
		t.Errorf("Same-mode transition produced calls: %v", log)
	}
	if m.Mode() != ModePlay {
		t.Errorf("Mode() = %v, expected play", m.Mode())
	}
}

func TestReentrantTransitionIsDropped(t *testing.T) {
	var log []string
	m := newFakeMachine(&log)

	// Pause's enter hook illegally requests another transition
	m.handlers[ModePause].(*fakeHandler).onEnter = func() {
		m.Transition(ModeMenu)
	}

	m.Transition(ModePause)

	if m.Mode() != ModePause {
		t.Errorf("Mode() = %v, expected the outer transition to win", m.Mode())
	}
	for _, call := range log {
		if call == "menu.enter" {
			t.Error("Reentrant transition must not run")
		}
	}
}

func TestUpdateAndRenderDelegateToCurrentOnly(t *testing.T) {
	var log []string
	m := newFakeMachine(&log)
	m.Transition(ModePlay)
	log = log[:0]

	m.Update(time.Second / 60)

	if len(log) != 1 || log[0] != "play.update" {
		t.Errorf("Call log = %v, expected only play.update", log)
	}
}

func TestAttachIsIdempotent(t *testing.T) {
	m := NewMachine()
	first := &Context{Input: core.NewInput()}
	second := &Context{Input: core.NewInput()}

	m.Attach(first)
	m.Attach(second)

	if first.Scenes != Controller(m) {
		t.Error("First Attach should bind the machine as controller")
	}
	if second.Scenes != nil {
		t.Error("Second Attach should be ignored")
	}
}

func TestStartEntersInitialModeOnce(t *testing.T) {
	var log []string
	m := newFakeMachine(&log)

	m.Start()
	m.Start()

	if len(log) != 1 || log[0] != "menu.enter" {
		t.Errorf("Call log = %v, expected a single menu.enter", log)
	}
}

func TestTransitionClearsPendingInput(t *testing.T) {
	m := NewMachine()
	in := core.NewInput()
	m.Attach(&Context{Input: in})
	m.Start()

	in.Press(core.KeyEscape)
	m.Transition(ModePlay)

	if in.Peek(core.KeyEscape) {
		t.Error("Stale presses should not leak across transitions")
	}
}
