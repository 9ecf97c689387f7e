package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NoteModal is the note editor for an asset. The draft lives here, not in
// the detail view, so abandoning the modal discards it cleanly.
type NoteModal struct {
	ModalLifecycle

	AssetID uint
	input   textinput.Model
}

var _ View = (*NoteModal)(nil)

// NewNoteModal creates a note editor in the open state.
func NewNoteModal(assetID uint) *NoteModal {
	ti := textinput.New()
	ti.Placeholder = "note"
	ti.Width = 48
	ti.Focus()
	m := &NoteModal{AssetID: assetID, input: ti}
	m.Open()
	return m
}

// Init implements View.
func (m *NoteModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *NoteModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Submitting() {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			body := strings.TrimSpace(m.input.Value())
			if body == "" {
				return m, nil
			}
			if !m.SubmitStart() {
				return m, nil
			}
			id := m.AssetID
			return m, func() tea.Msg {
				return SubmitNoteMsg{AssetID: id, Body: body}
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *NoteModal) View() string {
	content := ModalStyles.Title.Render("Add note") + "\n\n"
	content += m.input.View() + "\n\n"
	if m.Submitting() {
		content += ModalStyles.Help.Render("working…")
	} else {
		content += ModalStyles.Help.Render("Enter: save  Esc: cancel")
	}
	return ModalStyles.BoxDefault.Render(content)
}
