// Command maptui previews OHLC CSV and GeoJSON files as braille charts
// in the terminal.
package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/charts/internal/tui"
)

func main() {
	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(os.Args[1])
	} else {
		m = tui.New()
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
