package ui

import "assetdeck/internal/model"

// SelectAssetMsg is sent when the user opens an asset from the list.
type SelectAssetMsg struct {
	ID uint
}

// SwitchModeMsg switches between the asset and location lists.
type SwitchModeMsg struct {
	Mode AppMode
}

// AssetsLoadedMsg carries one page of assets from the server.
type AssetsLoadedMsg struct {
	Assets  []model.Asset
	Page    int
	PerPage int
	Total   int64
	Search  string
}

// LocationsLoadedMsg carries one page of locations from the server.
type LocationsLoadedMsg struct {
	Locations []model.Location
	Page      int
	PerPage   int
	Total     int64
	Search    string
}

// AssetDetailLoadedMsg carries the full asset aggregate for the detail view.
type AssetDetailLoadedMsg struct {
	Asset *model.Asset
}

// ShowBulkDeleteMsg opens the bulk-delete confirmation for the current
// location selection.
type ShowBulkDeleteMsg struct{}

// ShowBulkMoveMsg opens the destination picker for moving the current asset
// selection to a location.
type ShowBulkMoveMsg struct{}

// ShowNoteModalMsg opens the note editor for an asset.
type ShowNoteModalMsg struct {
	AssetID uint
}

// SubmitBulkDeleteMsg is sent when the user confirms a bulk delete.
type SubmitBulkDeleteMsg struct {
	Selection model.Selection
}

// SubmitBulkMoveMsg is sent when the user confirms a bulk location update.
type SubmitBulkMoveMsg struct {
	Selection  model.Selection
	LocationID uint
}

// SubmitNoteMsg is sent when the user submits the note editor.
type SubmitNoteMsg struct {
	AssetID uint
	Body    string
}

// BulkDoneMsg is sent when a bulk action has settled on the server.
type BulkDoneMsg struct {
	Verb     string // "deleted", "moved"
	Affected int64
}

// NoteCreatedMsg is sent when a note has been stored.
type NoteCreatedMsg struct {
	Note *model.Note
}

// AssetUpdatedMsg is sent after a single-asset mutation (toggle, custody).
type AssetUpdatedMsg struct {
	Asset *model.Asset
}

// OpFailedMsg is sent when a server call fails. Message is the normalized
// error text from the API envelope.
type OpFailedMsg struct {
	Err error
}

// DismissModalMsg closes the top modal. Ignored while the modal is
// submitting.
type DismissModalMsg struct{}

// ToggleAssetMsg archives or restores the detail view's asset.
type ToggleAssetMsg struct {
	ID uint
}

// ReleaseCustodyMsg clears custody on the detail view's asset.
type ReleaseCustodyMsg struct {
	ID uint
}
