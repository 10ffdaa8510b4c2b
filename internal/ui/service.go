package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/uniterm/internal/nav"
)

func serviceLabel(route nav.Route) string {
	switch {
	case route.Label != "":
		return route.Label
	case route.ServiceID != "":
		return route.ServiceID
	default:
		return "Service"
	}
}

// renderServiceDetail renders the placeholder page for a service tile.
func (m *Model) renderServiceDetail(s *screen) string {
	styles := m.theme.Styles()
	label := serviceLabel(s.route)
	width := min(max(m.width-8, 20), 72)

	title := styles.Heading.Foreground(lipgloss.Color(m.theme.Accent)).Render(label)
	body := styles.Text.Width(width).Align(lipgloss.Center).Render(fmt.Sprintf(
		"This is a placeholder page for the %q service. You can customize this screen with real content or navigation as needed.",
		label,
	))
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", body))
}
