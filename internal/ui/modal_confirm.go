package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"assetdeck/internal/model"
)

// ConfirmModal asks the user to confirm an action before it runs.
// Enter or y confirms and starts the submission; Esc cancels. While the
// submission is in flight both keys are dead: the modal cannot be dismissed
// or re-confirmed until the result settles it.
type ConfirmModal struct {
	ModalLifecycle

	Title     string
	Label     string
	Details   string // optional warning line under the label
	OnConfirm func() tea.Msg

	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal in the open state.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	m := &ConfirmModal{
		Title:       title,
		Label:       label,
		OnConfirm:   onConfirm,
		boxStyle:    ModalStyles.BoxWarning,
		titleStyle:  ModalStyles.TitleWarning,
		detailStyle: ModalStyles.Details,
	}
	m.Open()
	return m
}

// WithDetails adds a warning line to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewBulkDeleteConfirmModal creates the confirmation for deleting the
// selected locations.
func NewBulkDeleteConfirmModal(sel model.Selection, total int64) *ConfirmModal {
	label := fmt.Sprintf("%d location(s) will be deleted", len(sel.IDs))
	if sel.All {
		label = fmt.Sprintf("ALL %d location(s) will be deleted", total)
	}
	return NewConfirmModal(
		"Delete locations?",
		label,
		func() tea.Msg { return SubmitBulkDeleteMsg{Selection: sel} },
	).WithDetails("Assets at these locations keep no location")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.Submitting() {
				return m, nil
			}
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if !m.SubmitStart() {
				return m, nil
			}
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += ModalStyles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + m.detailStyle.Render(m.Details)
	}
	if m.Submitting() {
		content += "\n\n" + ModalStyles.Help.Render("working…")
	} else {
		content += "\n\n" + ModalStyles.Help.Render("y/Enter: confirm  Esc: cancel")
	}
	return m.boxStyle.Render(content)
}
