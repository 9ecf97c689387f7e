package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyHandlerLeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC b d", func() tea.Msg { return ShowBulkDeleteMsg{} }, "Delete selected")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(tea.KeyMsg{Type: tea.KeySpace}, ModeAssets)
	if !consumed || cmd != nil {
		t.Fatal("leader press should be consumed with no command")
	}
	if !h.LeaderWaiting {
		t.Fatal("handler should be waiting after the leader")
	}

	consumed, cmd = h.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, ModeAssets)
	if !consumed || cmd != nil {
		t.Fatal("submenu prefix should keep us in leader mode")
	}

	consumed, cmd = h.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, ModeAssets)
	if !consumed || cmd == nil {
		t.Fatal("full sequence should resolve to the bound command")
	}
	if _, ok := cmd().(ShowBulkDeleteMsg); !ok {
		t.Errorf("got %T, want ShowBulkDeleteMsg", cmd())
	}
	if h.LeaderWaiting {
		t.Error("leader mode should clear after resolution")
	}
}

func TestKeyHandlerEscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	h.Handle(tea.KeyMsg{Type: tea.KeySpace}, ModeAssets)
	consumed, _ := h.Handle(tea.KeyMsg{Type: tea.KeyEsc}, ModeAssets)
	if !consumed {
		t.Error("esc in leader mode should be consumed")
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	// Esc outside leader mode flows through to the views.
	consumed, _ = h.Handle(tea.KeyMsg{Type: tea.KeyEsc}, ModeAssets)
	if consumed {
		t.Error("esc outside leader mode should not be consumed")
	}
}

func TestKeyHandlerUnboundSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	h := NewKeyHandler(reg)

	h.Handle(tea.KeyMsg{Type: tea.KeySpace}, ModeAssets)
	consumed, cmd := h.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, ModeAssets)
	if !consumed || cmd != nil {
		t.Error("unbound key after leader should be swallowed")
	}
	if h.LeaderWaiting {
		t.Error("leader mode should clear on a dead-end sequence")
	}
}

func TestLeaderHintsModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC b m", func() tea.Msg { return ShowBulkMoveMsg{} }, "Move selected", []AppMode{ModeAssets})
	reg.BindWithDescForMode("SPC b d", func() tea.Msg { return ShowBulkDeleteMsg{} }, "Delete selected", []AppMode{ModeLocations})
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	hints := reg.LeaderHints("", ModeAssets)
	if hints["b"] != "Bulk" {
		t.Errorf(`first level hint for b = %q, want "Bulk"`, hints["b"])
	}
	if hints["q"] != "Quit" {
		t.Errorf(`first level hint for q = %q, want "Quit"`, hints["q"])
	}

	sub := reg.LeaderHints("SPC b", ModeAssets)
	if sub["m"] != "Move selected" {
		t.Errorf(`asset-mode hint for m = %q`, sub["m"])
	}
	if _, ok := sub["d"]; ok {
		t.Error("location-only binding should not hint in asset mode")
	}

	sub = reg.LeaderHints("SPC b", ModeLocations)
	if sub["d"] != "Delete selected" {
		t.Errorf(`location-mode hint for d = %q`, sub["d"])
	}
}

func TestHandleHonorsModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC b d", func() tea.Msg { return ShowBulkDeleteMsg{} }, "Delete selected", []AppMode{ModeLocations})
	h := NewKeyHandler(reg)

	// The location-only binding must not dispatch from the asset screen.
	h.Handle(tea.KeyMsg{Type: tea.KeySpace}, ModeAssets)
	h.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, ModeAssets)
	consumed, cmd := h.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, ModeAssets)
	if !consumed {
		t.Error("sequence should be swallowed even when filtered out")
	}
	if cmd != nil {
		t.Fatal("location-only binding fired in asset mode")
	}

	// Same sequence dispatches where the filter allows it.
	h.Handle(tea.KeyMsg{Type: tea.KeySpace}, ModeLocations)
	h.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, ModeLocations)
	_, cmd = h.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, ModeLocations)
	if cmd == nil {
		t.Fatal("binding should dispatch in its own mode")
	}
	if _, ok := cmd().(ShowBulkDeleteMsg); !ok {
		t.Errorf("got %T, want ShowBulkDeleteMsg", cmd())
	}
}
