package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2

	maxZoom = 16.0
	minZoom = 0.25
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.contentHeight()-2)
		}
	case tea.KeyMsg:
		// While the list is filtering it owns the keyboard.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < maxZoom {
				m.zoom *= 1.25
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > minZoom {
				m.zoom /= 1.25
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "p":
			if m.kind == kindGeomap {
				m.projIndex++
				m.status = "projection: " + m.projName()
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.contentHeight()-2)
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "r":
			if m.selPath != "" {
				m.loadPath(m.selPath)
			}
		case "h":
			m.helpVisible = !m.helpVisible
		}
	}
	// Pass messages to the list when visible.
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// contentHeight is the row count between header and footer.
func (m Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 4 {
		h = 4
	}
	return h
}
