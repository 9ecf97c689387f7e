package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"assetdeck/internal/model"
)

func newTestApp() *appModelAdapter {
	m := NewAppModel(nil, 8)
	return m.AsTeaModel().(*appModelAdapter)
}

// step feeds a message and returns the command without running it.
func step(a *appModelAdapter, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

func seedLocations(a *appModelAdapter, names ...string) {
	locs := make([]model.Location, len(names))
	for i, n := range names {
		locs[i] = model.Location{Name: n}
		locs[i].ID = uint(i + 1)
	}
	step(a, LocationsLoadedMsg{Locations: locs, Page: 1, PerPage: 8, Total: int64(len(locs))})
	step(a, SwitchModeMsg{Mode: ModeLocations})
}

func TestBulkDeleteFlow(t *testing.T) {
	a := newTestApp()
	seedLocations(a, "Garage", "Attic", "Shed")
	a.Locations.Selected[1] = true
	a.Locations.Selected[3] = true

	// Trigger opens the confirm modal.
	step(a, ShowBulkDeleteMsg{})
	if a.Overlays.Len() != 1 {
		t.Fatalf("overlay count = %d, want 1", a.Overlays.Len())
	}

	// Cancel while idle closes it.
	if cmd := step(a, keyMsg("esc")); cmd != nil {
		step(a, cmd())
	}
	if a.Overlays.Len() != 0 {
		t.Fatal("esc on idle modal should close it")
	}

	// Reopen and confirm.
	step(a, ShowBulkDeleteMsg{})
	cmd := step(a, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("confirm should produce a command")
	}
	submit, ok := cmd().(SubmitBulkDeleteMsg)
	if !ok {
		t.Fatalf("got %T, want SubmitBulkDeleteMsg", cmd())
	}
	if len(submit.Selection.IDs) != 2 {
		t.Errorf("selection carries %d ids, want 2", len(submit.Selection.IDs))
	}
	step(a, submit)

	// While the delete is in flight the modal cannot be closed.
	step(a, keyMsg("esc"))
	step(a, DismissModalMsg{})
	if a.Overlays.Len() != 1 {
		t.Fatal("modal must survive close attempts while submitting")
	}

	// The settled result closes the modal and clears the selection.
	step(a, BulkDoneMsg{Verb: "deleted", Affected: 2})
	if a.Overlays.Len() != 0 {
		t.Error("modal should close when the bulk delete settles")
	}
	if a.Locations.SelectionCount() != 0 {
		t.Error("selection should be cleared after a bulk delete")
	}
	if a.Status == "" {
		t.Error("status bar should report the outcome")
	}
}

func TestBulkDeleteAllSentinel(t *testing.T) {
	a := newTestApp()
	seedLocations(a, "Garage", "Attic")
	a.Locations.All = true

	step(a, ShowBulkDeleteMsg{})
	cmd := step(a, keyMsg("enter"))
	submit := cmd().(SubmitBulkDeleteMsg)
	if !submit.Selection.All {
		t.Error("select-all should carry the sentinel, not ids")
	}
	if len(submit.Selection.IDs) != 0 {
		t.Errorf("sentinel selection carries %d ids, want 0", len(submit.Selection.IDs))
	}
}

func TestBulkDeleteNothingSelected(t *testing.T) {
	a := newTestApp()
	seedLocations(a, "Garage")

	step(a, ShowBulkDeleteMsg{})
	if a.Overlays.Len() != 0 {
		t.Error("empty selection should not open the modal")
	}
	if !a.statusErr {
		t.Error("empty selection should surface an error status")
	}
}

func TestBulkMoveFlow(t *testing.T) {
	a := newTestApp()
	seedLocations(a, "Garage", "Attic")
	step(a, SwitchModeMsg{Mode: ModeAssets})

	assets := []model.Asset{{Title: "Drill"}, {Title: "Ladder"}}
	assets[0].ID = 10
	assets[1].ID = 11
	step(a, AssetsLoadedMsg{Assets: assets, Page: 1, PerPage: 8, Total: 2})
	a.Assets.Selected[10] = true

	step(a, ShowBulkMoveMsg{})
	if a.Overlays.Len() != 1 {
		t.Fatal("move picker should open when locations are loaded")
	}

	// Pick the second location and confirm.
	step(a, keyMsg("j"))
	cmd := step(a, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("confirm should produce a command")
	}
	submit := cmd().(SubmitBulkMoveMsg)
	if submit.LocationID != 2 {
		t.Errorf("LocationID = %d, want 2", submit.LocationID)
	}
	step(a, submit)

	step(a, BulkDoneMsg{Verb: "moved", Affected: 1})
	if a.Overlays.Len() != 0 {
		t.Error("picker should close when the move settles")
	}
	if a.Assets.SelectionCount() != 0 {
		t.Error("asset selection should be cleared after the move")
	}
}

func TestBulkMoveLoadsLocationsFirst(t *testing.T) {
	a := newTestApp()
	assets := []model.Asset{{Title: "Drill"}}
	assets[0].ID = 10
	step(a, AssetsLoadedMsg{Assets: assets, Page: 1, PerPage: 8, Total: 1})
	a.Assets.Selected[10] = true

	if cmd := step(a, ShowBulkMoveMsg{}); cmd == nil {
		t.Fatal("move with no locations loaded should fetch them")
	}
	if a.Overlays.Len() != 0 {
		t.Fatal("picker must wait for locations")
	}

	locs := []model.Location{{Name: "Garage"}}
	locs[0].ID = 1
	step(a, LocationsLoadedMsg{Locations: locs, Page: 1, PerPage: 8, Total: 1})
	if a.Overlays.Len() != 1 {
		t.Error("picker should open once locations arrive")
	}
}

func TestFailedSubmitClosesModalWithError(t *testing.T) {
	a := newTestApp()
	seedLocations(a, "Garage")
	a.Locations.Selected[1] = true

	step(a, ShowBulkDeleteMsg{})
	cmd := step(a, keyMsg("enter"))
	step(a, cmd())

	step(a, OpFailedMsg{Err: errFake("boom")})
	if a.Overlays.Len() != 0 {
		t.Error("failed submission should still settle and close the modal")
	}
	if !a.statusErr || a.Status == "" {
		t.Error("failure should land in the status bar")
	}
}

func TestNoteFlowFromDetail(t *testing.T) {
	a := newTestApp()
	asset := &model.Asset{Title: "Drill"}
	asset.ID = 7
	step(a, SelectAssetMsg{ID: 7})
	if a.Mode != ModeAssetDetail {
		t.Fatalf("mode = %v, want AssetDetail", a.Mode)
	}
	step(a, AssetDetailLoadedMsg{Asset: asset})

	step(a, ShowNoteModalMsg{AssetID: 7})
	if a.Overlays.Len() != 1 {
		t.Fatal("note modal should open")
	}
	step(a, keyMsg("chain oiled"))
	cmd := step(a, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("submit should produce a command")
	}
	submit := cmd().(SubmitNoteMsg)
	if submit.AssetID != 7 || submit.Body != "chain oiled" {
		t.Errorf("SubmitNoteMsg = %+v", submit)
	}
	step(a, submit)

	note := &model.Note{AssetID: 7, Body: "chain oiled"}
	if cmd := step(a, NoteCreatedMsg{Note: note}); cmd == nil {
		t.Error("stored note should trigger a detail reload")
	}
	if a.Overlays.Len() != 0 {
		t.Error("note modal should close once the note is stored")
	}
}

func TestEscLeavesDetail(t *testing.T) {
	a := newTestApp()
	step(a, SelectAssetMsg{ID: 3})
	step(a, keyMsg("esc"))
	if a.Mode != ModeAssets {
		t.Errorf("mode = %v, want Assets after esc", a.Mode)
	}
	if a.Detail != nil {
		t.Error("detail view should be dropped on esc")
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
