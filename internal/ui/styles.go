package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - selected items, borders
	ColorDanger    = "196" // Red - destructive modals, errors
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - warning details, custody markers
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent - main titles
	TitleWarning lipgloss.Style // Bold danger - destructive modal titles

	Box       lipgloss.Style // Standard modal box (highlight border)
	BoxDanger lipgloss.Style // Destructive modal box (danger border)

	Selected lipgloss.Style // Highlighted/selected items
	Checked  lipgloss.Style // Bulk-selection checkmarks
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	Status   lipgloss.Style // Status bar text
	Section  lipgloss.Style // Detail section headers
	Empty    lipgloss.Style // Empty state text
	Label    lipgloss.Style // Modal label/content
	Details  lipgloss.Style // Warning details
	Error    lipgloss.Style // Error text in the status bar
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Checked: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared
// styles. Standardizes list configuration across the asset and location lists.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}

// ModalStyles groups the styles modals draw with.
var ModalStyles = struct {
	BoxDefault   lipgloss.Style
	BoxWarning   lipgloss.Style
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Label        lipgloss.Style
	Help         lipgloss.Style
	Details      lipgloss.Style
}{
	BoxDefault:   Styles.Box,
	BoxWarning:   Styles.BoxDanger,
	Title:        Styles.Title,
	TitleWarning: Styles.TitleWarning,
	Label:        Styles.Label,
	Help:         Styles.Hint,
	Details:      Styles.Details,
}
