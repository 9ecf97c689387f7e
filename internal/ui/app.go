package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"assetdeck/internal/client"
)

// showNoteForCurrentMsg opens the note editor for the asset on screen.
type showNoteForCurrentMsg struct{}

// AppModel is the root model. It switches between the asset list, the
// location list, and the asset detail screen, with modals layered on top.
type AppModel struct {
	Mode       AppMode
	Assets     *AssetsView
	Locations  *LocationsView
	Detail     *AssetDetailView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Client     *client.Client
	PerPage    int

	Status    string
	statusErr bool

	// pendingMove is set when a bulk move was requested before any
	// locations were loaded; the picker opens once they arrive.
	pendingMove bool

	width  int
	height int
}

// NewAppModel creates the root application model.
func NewAppModel(c *client.Client, perPage int) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC a l", func() tea.Msg { return SwitchModeMsg{Mode: ModeAssets} }, "Asset list")
	reg.BindWithDescForMode("SPC a n", func() tea.Msg { return showNoteForCurrentMsg{} }, "Add note", []AppMode{ModeAssetDetail})
	reg.BindWithDesc("SPC l l", func() tea.Msg { return SwitchModeMsg{Mode: ModeLocations} }, "Location list")
	reg.BindWithDescForMode("SPC b m", func() tea.Msg { return ShowBulkMoveMsg{} }, "Move selected", []AppMode{ModeAssets})
	reg.BindWithDescForMode("SPC b d", func() tea.Msg { return ShowBulkDeleteMsg{} }, "Delete selected", []AppMode{ModeLocations})

	return &AppModel{
		Mode:       ModeAssets,
		Assets:     NewAssetsView(perPage),
		Locations:  NewLocationsView(perPage),
		KeyHandler: NewKeyHandler(reg),
		Client:     c,
		PerPage:    perPage,
	}
}

var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		a.Assets.Init(),
		a.Assets.SetLoading(true),
		loadAssetsCmd(a.Client, 1, a.PerPage, ""),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handleMsg(msg); handled {
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		av, _ := a.Assets.Update(msg)
		a.Assets = av.(*AssetsView)
		lv, _ := a.Locations.Update(msg)
		a.Locations = lv.(*LocationsView)
		return a, nil
	case tea.KeyMsg:
		// Modals take every key while present.
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		// Keybind system, unless a text input is capturing keys.
		if a.KeyHandler != nil && !a.inputActive() {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, keyCmd
			}
		}
		// App-level navigation
		if a.Mode == ModeAssetDetail && msg.String() == "esc" {
			a.Mode = ModeAssets
			a.Detail = nil
			return a, nil
		}
		if msg.String() == "tab" && a.Mode != ModeAssetDetail && !a.inputActive() {
			if a.Mode == ModeAssets {
				return a, func() tea.Msg { return SwitchModeMsg{Mode: ModeLocations} }
			}
			return a, func() tea.Msg { return SwitchModeMsg{Mode: ModeAssets} }
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var base string
	if top, ok := a.Overlays.Peek(); ok {
		base = top.View.View()
		if a.width > 0 && a.height > 0 {
			base = lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, base)
		}
	} else {
		base = a.currentView().View()
		if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
			base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
		}
	}
	return base + "\n" + a.statusBar()
}

func (a *appModelAdapter) statusBar() string {
	bar := Styles.Status.Render(a.Mode.String())
	if a.Status != "" {
		if a.statusErr {
			bar += "  " + Styles.Error.Render(a.Status)
		} else {
			bar += "  " + Styles.Muted.Render(a.Status)
		}
	}
	return bar
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeLocations:
		return a.Locations
	case ModeAssetDetail:
		if a.Detail != nil {
			return a.Detail
		}
	}
	return a.Assets
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeAssets:
		if av, ok := v.(*AssetsView); ok {
			a.Assets = av
		}
	case ModeLocations:
		if lv, ok := v.(*LocationsView); ok {
			a.Locations = lv
		}
	case ModeAssetDetail:
		if dv, ok := v.(*AssetDetailView); ok {
			a.Detail = dv
		}
	}
}

func (a *appModelAdapter) inputActive() bool {
	switch a.Mode {
	case ModeAssets:
		return a.Assets.InputActive()
	case ModeLocations:
		return a.Locations.InputActive()
	}
	return false
}
