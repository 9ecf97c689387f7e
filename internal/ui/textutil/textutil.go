// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the character appended when text is cut.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string, accounting
// for ANSI escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate cuts s to at most maxWidth visual columns, appending an ellipsis
// when anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}
	var (
		width int
		out   []rune
	)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if width+w > available {
			break
		}
		width += w
		out = append(out, r)
	}
	return string(out) + TruncateEllipsis
}
