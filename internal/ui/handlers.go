package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"assetdeck/internal/apperr"
)

// settler is implemented by every modal via ModalLifecycle.
type settler interface {
	Submitting() bool
	SubmitEnd()
}

// handleMsg processes domain messages. Returns handled=false for messages
// that should flow to the views instead (keys, window size, spinner ticks).
func (a *appModelAdapter) handleMsg(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case assetsPageRequestMsg:
		return true, tea.Batch(
			a.Assets.SetLoading(true),
			loadAssetsCmd(a.Client, msg.Page, msg.PerPage, msg.Search),
		)
	case locationsPageRequestMsg:
		return true, tea.Batch(
			a.Locations.SetLoading(true),
			loadLocationsCmd(a.Client, msg.Page, msg.PerPage, msg.Search),
		)
	case AssetsLoadedMsg:
		a.Assets.SetPage(msg)
		return true, nil
	case LocationsLoadedMsg:
		a.Locations.SetPage(msg)
		if a.pendingMove {
			a.pendingMove = false
			a.Overlays.Push(Overlay{View: NewBulkMoveModal(a.Assets.Selection(), a.Locations.Locations)})
		}
		return true, nil
	case AssetDetailLoadedMsg:
		if a.Detail != nil {
			a.Detail.SetAsset(msg.Asset)
		}
		return true, nil

	case SelectAssetMsg:
		a.Mode = ModeAssetDetail
		a.Detail = NewAssetDetailView(msg.ID)
		return true, loadAssetDetailCmd(a.Client, msg.ID)
	case SwitchModeMsg:
		a.Mode = msg.Mode
		switch msg.Mode {
		case ModeAssets:
			if len(a.Assets.Assets) == 0 {
				return true, tea.Batch(
					a.Assets.SetLoading(true),
					loadAssetsCmd(a.Client, 1, a.PerPage, ""),
				)
			}
		case ModeLocations:
			if len(a.Locations.Locations) == 0 {
				return true, tea.Batch(
					a.Locations.SetLoading(true),
					loadLocationsCmd(a.Client, 1, a.PerPage, ""),
				)
			}
		}
		return true, nil

	case ShowBulkDeleteMsg:
		sel := a.Locations.Selection()
		if len(sel.IDs) == 0 && !sel.All {
			a.setStatus("nothing selected", true)
			return true, nil
		}
		a.Overlays.Push(Overlay{View: NewBulkDeleteConfirmModal(sel, a.Locations.Total)})
		return true, nil
	case ShowBulkMoveMsg:
		sel := a.Assets.Selection()
		if len(sel.IDs) == 0 && !sel.All {
			a.setStatus("nothing selected", true)
			return true, nil
		}
		if len(a.Locations.Locations) == 0 {
			a.pendingMove = true
			return true, loadLocationsCmd(a.Client, 1, a.PerPage, "")
		}
		a.Overlays.Push(Overlay{View: NewBulkMoveModal(sel, a.Locations.Locations)})
		return true, nil
	case showNoteForCurrentMsg:
		if a.Mode == ModeAssetDetail && a.Detail != nil {
			a.Overlays.Push(Overlay{View: NewNoteModal(a.Detail.AssetID)})
		}
		return true, nil
	case ShowNoteModalMsg:
		a.Overlays.Push(Overlay{View: NewNoteModal(msg.AssetID)})
		return true, nil

	case SubmitBulkDeleteMsg:
		return true, bulkDeleteCmd(a.Client, msg.Selection)
	case SubmitBulkMoveMsg:
		return true, bulkMoveCmd(a.Client, msg.Selection, msg.LocationID)
	case SubmitNoteMsg:
		return true, createNoteCmd(a.Client, msg.AssetID, msg.Body)
	case ToggleAssetMsg:
		return true, toggleAssetCmd(a.Client, msg.ID)
	case ReleaseCustodyMsg:
		return true, releaseCustodyCmd(a.Client, msg.ID)

	case BulkDoneMsg:
		a.settleTopModal()
		a.setStatus(fmt.Sprintf("%s %d record(s)", msg.Verb, msg.Affected), false)
		switch msg.Verb {
		case "deleted":
			a.Locations.ClearSelection()
			return true, tea.Batch(
				a.Locations.SetLoading(true),
				loadLocationsCmd(a.Client, a.Locations.Page, a.Locations.PerPage, a.Locations.Query),
			)
		default:
			a.Assets.ClearSelection()
			return true, tea.Batch(
				a.Assets.SetLoading(true),
				loadAssetsCmd(a.Client, a.Assets.Page, a.Assets.PerPage, a.Assets.Query),
			)
		}
	case NoteCreatedMsg:
		a.settleTopModal()
		a.setStatus("note added", false)
		if a.Detail != nil {
			return true, loadAssetDetailCmd(a.Client, a.Detail.AssetID)
		}
		return true, nil
	case AssetUpdatedMsg:
		if a.Detail != nil && msg.Asset != nil && a.Detail.AssetID == msg.Asset.ID {
			a.Detail.SetAsset(msg.Asset)
		}
		a.setStatus("saved", false)
		return true, nil

	case OpFailedMsg:
		// A failed submission still settles and closes its modal; the
		// error lands in the status bar.
		a.settleTopModal()
		a.pendingMove = false
		a.Assets.SetLoading(false)
		a.Locations.SetLoading(false)
		a.setStatus(apperr.MessageOf(msg.Err), true)
		return true, nil

	case DismissModalMsg:
		a.Overlays.Pop()
		return true, nil
	}
	return false, nil
}

// settleTopModal ends the top modal's submission and removes it.
func (a *appModelAdapter) settleTopModal() {
	top, ok := a.Overlays.Peek()
	if !ok {
		return
	}
	if s, ok := top.View.(settler); ok && s.Submitting() {
		s.SubmitEnd()
		a.Overlays.ForcePop()
	}
}

func (a *appModelAdapter) setStatus(text string, isErr bool) {
	a.Status = text
	a.statusErr = isErr
}
