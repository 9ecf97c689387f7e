package ui

import (
	"context"
	"time"

	"assetdeck/internal/client"
	"assetdeck/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// requestTimeout bounds every server call made from the UI loop.
const requestTimeout = 15 * time.Second

func loadAssetsCmd(c *client.Client, page, perPage int, search string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := c.ListAssets(ctx, page, perPage, search)
		if err != nil {
			return OpFailedMsg{Err: err}
		}
		return AssetsLoadedMsg{
			Assets:  res.Items,
			Page:    res.Page,
			PerPage: res.PerPage,
			Total:   res.Total,
			Search:  search,
		}
	}
}

func loadLocationsCmd(c *client.Client, page, perPage int, search string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res, err := c.ListLocations(ctx, page, perPage, search)
		if err != nil {
			return OpFailedMsg{Err: err}
		}
		return LocationsLoadedMsg{
			Locations: res.Items,
			Page:      res.Page,
			PerPage:   res.PerPage,
			Total:     res.Total,
			Search:    search,
		}
	}
}

func loadAssetDetailCmd(c *client.Client, id uint) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		asset, err := c.GetAsset(ctx, id)
		if err != nil {
			return OpFailedMsg{Err: err}
		}
		return AssetDetailLoadedMsg{Asset: asset}
	}
}

func bulkDeleteCmd(c *client.Client, sel model.Selection) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		n, err := c.BulkDeleteLocations(ctx, sel)
		if err != nil {
			return OpFailedMsg{Err: err}
		}
		return BulkDoneMsg{Verb: "deleted", Affected: n}
	}
}

func bulkMoveCmd(c *client.Client, sel model.Selection, locationID uint) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		n, err := c.BulkUpdateLocation(ctx, sel, locationID)
		if err != nil {
			return OpFailedMsg{Err: err}
		}
		return BulkDoneMsg{Verb: "moved", Affected: n}
	}
}

func createNoteCmd(c *client.Client, assetID uint, body string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		note, err := c.CreateNote(ctx, assetID, body)
		if err != nil {
			return OpFailedMsg{Err: err}
		}
		return NoteCreatedMsg{Note: note}
	}
}

func toggleAssetCmd(c *client.Client, id uint) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		asset, err := c.ToggleAsset(ctx, id)
		if err != nil {
			return OpFailedMsg{Err: err}
		}
		return AssetUpdatedMsg{Asset: asset}
	}
}

func releaseCustodyCmd(c *client.Client, id uint) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		asset, err := c.ReleaseCustody(ctx, id)
		if err != nil {
			return OpFailedMsg{Err: err}
		}
		return AssetUpdatedMsg{Asset: asset}
	}
}
