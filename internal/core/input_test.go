package core

import "testing"

func TestInputConsumeOnce(t *testing.T) {
	in := NewInput()

	in.Press(KeyInteract)

	if !in.ConsumeInteractPress() {
		t.Fatal("First ConsumeInteractPress() should return true")
	}
	if in.ConsumeInteractPress() {
		t.Error("Second ConsumeInteractPress() should return false (one-shot)")
	}
}

func TestInputConsumeWithoutPress(t *testing.T) {
	in := NewInput()

	if in.ConsumeKeyPress(KeyEscape) {
		t.Error("ConsumeKeyPress() without a press should return false")
	}
}

func TestInputKeysAreIndependent(t *testing.T) {
	in := NewInput()

	in.Press(KeyJump)
	in.Press(KeyEscape)

	if !in.ConsumeKeyPress(KeyEscape) {
		t.Error("Escape press should be consumable")
	}
	if !in.ConsumeKeyPress(KeyJump) {
		t.Error("Jump press should survive consuming escape")
	}
}

func TestInputPeekDoesNotConsume(t *testing.T) {
	in := NewInput()

	in.Press(KeyJump)

	if !in.Peek(KeyJump) {
		t.Fatal("Peek should see the pending press")
	}
	if !in.ConsumeKeyPress(KeyJump) {
		t.Error("Peek must not consume the press")
	}
}

func TestInputClear(t *testing.T) {
	in := NewInput()

	in.Press(KeyJump)
	in.Press(KeyInteract)
	in.Clear()

	if in.ConsumeKeyPress(KeyJump) || in.ConsumeInteractPress() {
		t.Error("Clear should drop all pending presses")
	}
}

func TestInputNilReceiverTolerant(t *testing.T) {
	var in *Input

	// Absent input collaborator must not panic
	if in.ConsumeInteractPress() || in.ConsumeKeyPress(KeyEscape) || in.Peek(KeyJump) {
		t.Error("nil Input should report no presses")
	}
}
