package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"assetdeck/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModalConfirmFiresOnce(t *testing.T) {
	fired := 0
	m := NewConfirmModal("Delete locations?", "2 location(s)", func() tea.Msg {
		fired++
		return SubmitBulkDeleteMsg{Selection: model.Selection{IDs: []uint{1, 2}}}
	})
	if !m.IsOpen() {
		t.Fatal("new confirm modal should be open")
	}

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should produce the confirm command")
	}
	if msg, ok := cmd().(SubmitBulkDeleteMsg); !ok {
		t.Fatalf("confirm command produced %T, want SubmitBulkDeleteMsg", msg)
	}
	if !m.Submitting() {
		t.Error("modal should be submitting after confirm")
	}

	// Second confirm while in flight is dead.
	_, cmd = m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("enter while submitting should produce no command")
	}
	if fired != 1 {
		t.Errorf("OnConfirm fired %d times, want 1", fired)
	}
}

func TestConfirmModalEscWhileSubmitting(t *testing.T) {
	m := NewConfirmModal("Delete locations?", "x", func() tea.Msg { return BulkDoneMsg{} })
	m.Update(keyMsg("enter"))

	_, cmd := m.Update(keyMsg("esc"))
	if cmd != nil {
		t.Error("esc while submitting should be dead")
	}
	if !m.IsOpen() {
		t.Error("modal must stay open while submitting")
	}

	m.SubmitEnd()
	if m.IsOpen() {
		t.Error("modal should close once the submission settles")
	}
}

func TestConfirmModalEscDismissesWhenIdle(t *testing.T) {
	m := NewConfirmModal("Delete locations?", "x", nil)
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should produce a dismiss command")
	}
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Error("esc should produce DismissModalMsg")
	}
}

func TestBulkDeleteConfirmLabel(t *testing.T) {
	m := NewBulkDeleteConfirmModal(model.Selection{All: true}, 40)
	if got := m.Label; got != "ALL 40 location(s) will be deleted" {
		t.Errorf("label = %q", got)
	}
	m = NewBulkDeleteConfirmModal(model.Selection{IDs: []uint{3, 9}}, 40)
	if got := m.Label; got != "2 location(s) will be deleted" {
		t.Errorf("label = %q", got)
	}
}

func TestBulkMoveModalSubmitLock(t *testing.T) {
	locs := []model.Location{{Name: "Garage"}, {Name: "Attic"}}
	locs[0].ID = 1
	locs[1].ID = 2
	m := NewBulkMoveModal(model.Selection{IDs: []uint{7}}, locs)

	m.Update(keyMsg("j"))
	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should produce the move command")
	}
	msg, ok := cmd().(SubmitBulkMoveMsg)
	if !ok {
		t.Fatalf("got %T, want SubmitBulkMoveMsg", cmd())
	}
	if msg.LocationID != 2 {
		t.Errorf("LocationID = %d, want 2 after moving cursor down", msg.LocationID)
	}

	// Everything is dead while in flight.
	_, cmd = m.Update(keyMsg("esc"))
	if cmd != nil || !m.IsOpen() {
		t.Error("esc while submitting should be dead")
	}
	prev := m.Cursor
	m.Update(keyMsg("k"))
	if m.Cursor != prev {
		t.Error("cursor should not move while submitting")
	}
}

func TestNoteModalRequiresBody(t *testing.T) {
	m := NewNoteModal(5)
	_, cmd := m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("enter with empty body should do nothing")
	}
	if m.Submitting() {
		t.Error("empty submit must not start a submission")
	}

	m.Update(keyMsg("needs new batteries"))
	_, cmd = m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter with body should produce the submit command")
	}
	msg, ok := cmd().(SubmitNoteMsg)
	if !ok {
		t.Fatalf("got %T, want SubmitNoteMsg", cmd())
	}
	if msg.AssetID != 5 || msg.Body != "needs new batteries" {
		t.Errorf("SubmitNoteMsg = %+v", msg)
	}
}
