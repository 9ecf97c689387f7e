package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"assetdeck/internal/model"
)

// BulkMoveModal picks a destination location for the selected assets.
// j/k moves the cursor, Enter confirms and starts the submission, Esc
// cancels. While the submission is in flight every key is dead.
type BulkMoveModal struct {
	ModalLifecycle

	Selection model.Selection
	Locations []model.Location
	Cursor    int
}

var _ View = (*BulkMoveModal)(nil)

// NewBulkMoveModal creates the destination picker in the open state.
func NewBulkMoveModal(sel model.Selection, locations []model.Location) *BulkMoveModal {
	m := &BulkMoveModal{
		Selection: sel,
		Locations: locations,
	}
	m.Open()
	return m
}

// Init implements View.
func (m *BulkMoveModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *BulkMoveModal) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.Submitting() {
		return m, nil
	}
	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return DismissModalMsg{} }
	case "j", "down":
		if m.Cursor < len(m.Locations)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "enter":
		if len(m.Locations) == 0 {
			return m, nil
		}
		if !m.SubmitStart() {
			return m, nil
		}
		dest := m.Locations[m.Cursor].ID
		sel := m.Selection
		return m, func() tea.Msg {
			return SubmitBulkMoveMsg{Selection: sel, LocationID: dest}
		}
	}
	return m, nil
}

// View implements View.
func (m *BulkMoveModal) View() string {
	count := fmt.Sprintf("%d asset(s)", len(m.Selection.IDs))
	if m.Selection.All {
		count = "ALL assets"
	}
	content := ModalStyles.Title.Render("Move "+count) + "\n\n"
	if len(m.Locations) == 0 {
		content += Styles.Empty.Render("No locations yet")
	}
	for i, loc := range m.Locations {
		line := "  " + loc.Name
		if i == m.Cursor {
			line = Styles.Selected.Render("> " + loc.Name)
		}
		content += line + "\n"
	}
	if m.Submitting() {
		content += "\n" + ModalStyles.Help.Render("working…")
	} else {
		content += "\n" + ModalStyles.Help.Render("j/k: choose  Enter: move  Esc: cancel")
	}
	return ModalStyles.BoxDefault.Render(content)
}
