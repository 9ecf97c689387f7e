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

// locationItem implements list.Item for a location row.
type locationItem struct {
	loc      model.Location
	selected bool
}

func (i locationItem) FilterValue() string { return i.loc.Name }
func (i locationItem) Description() string { return "" }
func (i locationItem) Title() string {
	mark := "[ ]"
	if i.selected {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s", mark, i.loc.Name)
	if i.loc.Description != nil && *i.loc.Description != "" {
		line += "  " + textutil.Truncate(*i.loc.Description, 40)
	}
	return line
}

// LocationsView lists the organization's locations one page at a time with
// bulk selection for delete.
type LocationsView struct {
	list    list.Model
	spinner spinner.Model
	search  textinput.Model

	Locations []model.Location
	Selected  map[uint]bool
	All       bool // select-all sentinel; overrides Selected

	Page      int
	PerPage   int
	Total     int64
	Query     string
	searching bool
	loading   bool
}

var _ View = (*LocationsView)(nil)

// NewLocationsView creates an empty location list; rows arrive via
// LocationsLoadedMsg.
func NewLocationsView(perPage int) *LocationsView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Locations"
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

	return &LocationsView{
		list:     l,
		spinner:  s,
		search:   ti,
		Selected: make(map[uint]bool),
		Page:     1,
		PerPage:  perPage,
	}
}

// Selection returns the bulk-action input for the current state.
func (v *LocationsView) Selection() model.Selection {
	if v.All {
		return model.Selection{All: true}
	}
	ids := make([]uint, 0, len(v.Selected))
	for _, loc := range v.Locations {
		if v.Selected[loc.ID] {
			ids = append(ids, loc.ID)
		}
	}
	return model.Selection{IDs: ids}
}

// SelectionCount returns how many rows the selection covers for display.
func (v *LocationsView) SelectionCount() int {
	if v.All {
		return int(v.Total)
	}
	return len(v.Selected)
}

// ClearSelection drops all selection state, including the sentinel.
func (v *LocationsView) ClearSelection() {
	v.Selected = make(map[uint]bool)
	v.All = false
}

// InputActive reports whether the search input is capturing keys.
func (v *LocationsView) InputActive() bool {
	return v.searching
}

// SetLoading sets the loading state and returns a spinner command if needed.
func (v *LocationsView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// SetPage replaces the list contents with a freshly loaded page.
func (v *LocationsView) SetPage(msg LocationsLoadedMsg) {
	v.Locations = msg.Locations
	v.Page = msg.Page
	v.PerPage = msg.PerPage
	v.Total = msg.Total
	v.Query = msg.Search
	v.loading = false
	v.refreshItems()
}

func (v *LocationsView) refreshItems() {
	items := make([]list.Item, len(v.Locations))
	for i, loc := range v.Locations {
		items[i] = locationItem{loc: loc, selected: v.All || v.Selected[loc.ID]}
	}
	v.list.SetItems(items)
}

func (v *LocationsView) maxPage() int {
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
func (v *LocationsView) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update implements View. Returns load requests as pageRequestMsg for the
// app to translate into client calls.
func (v *LocationsView) Update(msg tea.Msg) (View, tea.Cmd) {
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
		case "x":
			if loc, ok := v.current(); ok {
				if v.All {
					// Dropping one row off the sentinel means enumerating
					// the rest explicitly; fall back to this page.
					v.All = false
					for _, l := range v.Locations {
						v.Selected[l.ID] = true
					}
				}
				v.Selected[loc.ID] = !v.Selected[loc.ID]
				if !v.Selected[loc.ID] {
					delete(v.Selected, loc.ID)
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
		case "d":
			if v.SelectionCount() > 0 {
				return v, func() tea.Msg { return ShowBulkDeleteMsg{} }
			}
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *LocationsView) updateSearch(msg tea.KeyMsg) (View, tea.Cmd) {
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

func (v *LocationsView) current() (model.Location, bool) {
	idx := v.list.Index()
	if idx < 0 || idx >= len(v.Locations) {
		return model.Location{}, false
	}
	return v.Locations[idx], true
}

func (v *LocationsView) requestPage(page int) tea.Cmd {
	query := v.Query
	perPage := v.PerPage
	return func() tea.Msg {
		return locationsPageRequestMsg{Page: page, PerPage: perPage, Search: query}
	}
}

// locationsPageRequestMsg asks the app to fetch a location page.
type locationsPageRequestMsg struct {
	Page    int
	PerPage int
	Search  string
}

// View implements View.
func (v *LocationsView) View() string {
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
	out += "\n" + Styles.Hint.Render("x: select  A: select all  d: delete selected  /: search  n/p: page")
	return out
}
