package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"assetdeck/internal/model"
	"assetdeck/internal/ui/textutil"
)

// assetItem implements list.Item for an asset row.
type assetItem struct {
	asset    model.Asset
	selected bool
}

func (i assetItem) FilterValue() string { return i.asset.Title }
func (i assetItem) Description() string { return "" }
func (i assetItem) Title() string {
	mark := "[ ]"
	if i.selected {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s", mark, textutil.Truncate(i.asset.Title, 32))
	line += "  " + string(i.asset.Status)
	if i.asset.Location != nil {
		line += "  @ " + i.asset.Location.Name
	}
	return line
}

// AssetsView lists the organization's assets one page at a time with bulk
// selection for moving to a location.
type AssetsView struct {
	list    list.Model
	spinner spinner.Model
	search  textinput.Model

	Assets   []model.Asset
	Selected map[uint]bool
	All      bool // select-all sentinel; overrides Selected

	Page      int
	PerPage   int
	Total     int64
	Query     string
	searching bool
	loading   bool
}

var _ View = (*AssetsView)(nil)

// NewAssetsView creates an empty asset list; rows arrive via AssetsLoadedMsg.
func NewAssetsView(perPage int) *AssetsView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Assets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Width = 32

	return &AssetsView{
		list:     l,
		spinner:  s,
		search:   ti,
		Selected: make(map[uint]bool),
		Page:     1,
		PerPage:  perPage,
	}
}

// Selection returns the bulk-action input for the current state.
func (v *AssetsView) Selection() model.Selection {
	if v.All {
		return model.Selection{All: true}
	}
	ids := make([]uint, 0, len(v.Selected))
	for _, a := range v.Assets {
		if v.Selected[a.ID] {
			ids = append(ids, a.ID)
		}
	}
	return model.Selection{IDs: ids}
}

// SelectionCount returns how many rows the selection covers for display.
func (v *AssetsView) SelectionCount() int {
	if v.All {
		return int(v.Total)
	}
	return len(v.Selected)
}

// ClearSelection drops all selection state, including the sentinel.
func (v *AssetsView) ClearSelection() {
	v.Selected = make(map[uint]bool)
	v.All = false
}

// InputActive reports whether the search input is capturing keys.
func (v *AssetsView) InputActive() bool {
	return v.searching
}

// SetLoading sets the loading state and returns a spinner command if needed.
func (v *AssetsView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// SetPage replaces the list contents with a freshly loaded page.
func (v *AssetsView) SetPage(msg AssetsLoadedMsg) {
	v.Assets = msg.Assets
	v.Page = msg.Page
	v.PerPage = msg.PerPage
	v.Total = msg.Total
	v.Query = msg.Search
	v.loading = false
	v.refreshItems()
}

func (v *AssetsView) refreshItems() {
	items := make([]list.Item, len(v.Assets))
	for i, a := range v.Assets {
		items[i] = assetItem{asset: a, selected: v.All || v.Selected[a.ID]}
	}
	v.list.SetItems(items)
}

func (v *AssetsView) maxPage() int {
	if v.PerPage <= 0 {
		return 1
	}
	p := int((v.Total + int64(v.PerPage) - 1) / int64(v.PerPage))
	if p < 1 {
		p = 1
	}
	return p
}

// Init implements View.
func (v *AssetsView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update implements View.
func (v *AssetsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.list.SetWidth(msg.Width)
		v.list.SetHeight(msg.Height - 5)
		return v, nil
	case spinner.TickMsg:
		if v.loading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		switch msg.String() {
		case "enter":
			if a, ok := v.current(); ok {
				id := a.ID
				return v, func() tea.Msg { return SelectAssetMsg{ID: id} }
			}
			return v, nil
		case "x":
			if a, ok := v.current(); ok {
				if v.All {
					v.All = false
					for _, row := range v.Assets {
						v.Selected[row.ID] = true
					}
				}
				v.Selected[a.ID] = !v.Selected[a.ID]
				if !v.Selected[a.ID] {
					delete(v.Selected, a.ID)
				}
				v.refreshItems()
			}
			return v, nil
		case "A":
			v.All = !v.All
			if v.All {
				v.Selected = make(map[uint]bool)
			}
			v.refreshItems()
			return v, nil
		case "/":
			v.searching = true
			v.search.SetValue(v.Query)
			v.search.Focus()
			return v, textinput.Blink
		case "n", "right":
			if v.Page < v.maxPage() {
				return v, v.requestPage(v.Page + 1)
			}
			return v, nil
		case "p", "left":
			if v.Page > 1 {
				return v, v.requestPage(v.Page - 1)
			}
			return v, nil
		case "m":
			if v.SelectionCount() > 0 {
				return v, func() tea.Msg { return ShowBulkMoveMsg{} }
			}
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *AssetsView) updateSearch(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.searching = false
		v.search.Blur()
		return v, nil
	case "enter":
		v.searching = false
		v.search.Blur()
		v.Query = v.search.Value()
		return v, v.requestPage(1)
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return v, cmd
}

func (v *AssetsView) current() (model.Asset, bool) {
	idx := v.list.Index()
	if idx < 0 || idx >= len(v.Assets) {
		return model.Asset{}, false
	}
	return v.Assets[idx], true
}

func (v *AssetsView) requestPage(page int) tea.Cmd {
	query := v.Query
	perPage := v.PerPage
	return func() tea.Msg {
		return assetsPageRequestMsg{Page: page, PerPage: perPage, Search: query}
	}
}

// assetsPageRequestMsg asks the app to fetch an asset page.
type assetsPageRequestMsg struct {
	Page    int
	PerPage int
	Search  string
}

// View implements View.
func (v *AssetsView) View() string {
	out := v.list.View()
	if v.searching {
		out += "\n" + Styles.Section.Render("/") + " " + v.search.View()
	}
	status := fmt.Sprintf("page %d/%d  %d total", v.Page, v.maxPage(), v.Total)
	if n := v.SelectionCount(); n > 0 {
		if v.All {
			status += "  all selected"
		} else {
			status += fmt.Sprintf("  %d selected", n)
		}
	}
	if v.loading {
		status = v.spinner.View() + " " + status
	}
	out += "\n" + Styles.Muted.Render(status)
	out += "\n" + Styles.Hint.Render("Enter: open  x: select  A: select all  m: move selected  /: search  n/p: page")
	return out
}
