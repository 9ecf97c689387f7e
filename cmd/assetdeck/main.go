package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"assetdeck/internal/client"
	"assetdeck/internal/config"
	"assetdeck/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "assetdeck:", err)
		os.Exit(1)
	}
	c, err := client.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "assetdeck:", err)
		os.Exit(1)
	}

	model := ui.NewAppModel(c, cfg.PageSize).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
