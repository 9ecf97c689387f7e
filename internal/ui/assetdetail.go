package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"assetdeck/internal/model"
)

// AssetDetailView shows one asset's full aggregate: custody, location,
// tags, custom fields, and notes. Fragments render only when they have
// content. The note draft itself lives in NoteModal, so leaving this view
// never carries editor state with it.
type AssetDetailView struct {
	AssetID uint
	Asset   *model.Asset
	loading bool
}

var _ View = (*AssetDetailView)(nil)

// NewAssetDetailView creates a detail view; the aggregate arrives via
// AssetDetailLoadedMsg.
func NewAssetDetailView(assetID uint) *AssetDetailView {
	return &AssetDetailView{AssetID: assetID, loading: true}
}

// SetAsset installs a freshly loaded aggregate.
func (v *AssetDetailView) SetAsset(a *model.Asset) {
	v.Asset = a
	v.loading = false
}

// Init implements View.
func (v *AssetDetailView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *AssetDetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || v.Asset == nil {
		return v, nil
	}
	switch key.String() {
	case "n":
		id := v.AssetID
		return v, func() tea.Msg { return ShowNoteModalMsg{AssetID: id} }
	case "t":
		id := v.AssetID
		return v, func() tea.Msg { return ToggleAssetMsg{ID: id} }
	case "r":
		if v.Asset.CustodianID != nil {
			id := v.AssetID
			return v, func() tea.Msg { return ReleaseCustodyMsg{ID: id} }
		}
	}
	return v, nil
}

// View implements View.
func (v *AssetDetailView) View() string {
	if v.loading || v.Asset == nil {
		return Styles.Empty.Render("Loading asset…")
	}
	a := v.Asset
	var b strings.Builder

	b.WriteString(Styles.Title.Render(a.Title))
	b.WriteString("  " + Styles.Status.Render(string(a.Status)) + "\n")

	if a.Location != nil {
		b.WriteString(Styles.Muted.Render("at ") + a.Location.Name + "\n")
	}
	if a.Custodian != nil {
		b.WriteString(Styles.Details.Render("in custody of "+a.Custodian.Name) + "\n")
	}
	if a.Description != nil && *a.Description != "" {
		b.WriteString("\n" + Styles.Normal.Render(*a.Description) + "\n")
	}
	if len(a.Tags) > 0 {
		names := make([]string, len(a.Tags))
		for i, t := range a.Tags {
			names[i] = t.Name
		}
		b.WriteString("\n" + Styles.Section.Render("Tags") + "  " + strings.Join(names, ", ") + "\n")
	}
	if len(a.Fields) > 0 {
		b.WriteString("\n" + Styles.Section.Render("Fields") + "\n")
		for _, f := range a.Fields {
			name := fmt.Sprintf("field %d", f.CustomFieldID)
			if f.CustomField != nil {
				name = f.CustomField.Name
			}
			b.WriteString(fmt.Sprintf("  %s: %s\n", name, string(f.Value)))
		}
	}
	if len(a.Notes) > 0 {
		b.WriteString("\n" + Styles.Section.Render(fmt.Sprintf("Notes (%d)", len(a.Notes))) + "\n")
		for _, n := range a.Notes {
			author := ""
			if n.Author != nil {
				author = Styles.Muted.Render(n.Author.Name+" · "+n.CreatedAt.Format("2006-01-02")) + " "
			}
			b.WriteString("  " + author + n.Body + "\n")
		}
	} else {
		b.WriteString("\n" + Styles.Empty.Render("No notes yet") + "\n")
	}

	hint := "n: add note  t: archive/restore  Esc: back"
	if a.CustodianID != nil {
		hint = "n: add note  r: release custody  t: archive/restore  Esc: back"
	}
	b.WriteString("\n" + Styles.Hint.Render(hint))
	return b.String()
}
