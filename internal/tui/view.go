package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentHeight := m.contentHeight()
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" charts · terminal preview ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	mapWidth := contentWidth
	if m.showSidebar {
		mapWidth -= sidebarWidth + 1
	}
	if mapWidth < 10 {
		mapWidth = 10
	}

	chart := m.renderChart(mapWidth, contentHeight)
	chartView := lipgloss.NewStyle().Width(mapWidth).Height(contentHeight).Render(chart)

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", chartView)
	} else {
		body = chartView
	}

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderHelp renders the key binding hints in the footer.
func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"p projection",
		"Tab files",
		"Enter open",
		"r reload",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
