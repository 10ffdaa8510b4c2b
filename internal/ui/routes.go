package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/uniterm/internal/nav"
)

func (m *Model) clampRouteSelection(s *screen) {
	n := len(m.routes.Routes)
	if s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// paintRoutes lists the polled routes with the selection highlighted.
func (m *Model) paintRoutes(s *screen) {
	styles := m.theme.Styles()
	snap := m.routes

	var b strings.Builder
	switch {
	case !snap.HasRoutes && snap.LastError != nil:
		b.WriteString(styles.DangerText.Render("Could not load routes: " + snap.LastError.Error()))
		s.viewport.SetContent(b.String())
		return
	case !snap.HasRoutes:
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render("Loading routes..."))
		s.viewport.SetContent(b.String())
		return
	case len(snap.Routes) == 0:
		b.WriteString(styles.MutedText.Render("No published compositions have a slug."))
		s.viewport.SetContent(b.String())
		return
	}

	width := max(m.width-4, 10)
	for i, route := range snap.Routes {
		line := padRight(truncateMiddle(route, width), width)
		if i == s.selected {
			b.WriteString(styles.Selected.Render(focusMarker + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if snap.LastError != nil {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Render("Last poll failed: " + snap.LastError.Error()))
	}
	s.viewport.SetContent(b.String())

	if s.selected < s.viewport.YOffset {
		s.viewport.SetYOffset(s.selected)
	} else if s.selected >= s.viewport.YOffset+s.viewport.Height {
		s.viewport.SetYOffset(s.selected - s.viewport.Height + 1)
	}
}

// handleRoutesKey moves the selection and opens the selected route.
func (m Model) handleRoutesKey(s *screen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.routes.Routes)
	if n == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.NextAction):
		if s.selected < n-1 {
			s.selected++
		}
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.PrevAction):
		if s.selected > 0 {
			s.selected--
		}
	case key.Matches(msg, m.keys.Top):
		s.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		s.selected = n - 1
	case key.Matches(msg, m.keys.Activate):
		return m.push(nav.Route{Kind: nav.KindComposition, Path: nav.Segments(m.routes.Routes[s.selected])})
	default:
		return m, nil
	}
	m.paintScreen(s)
	return m, nil
}

// routesSummary is the header text for the route poller state.
func (m Model) routesSummary() string {
	snap := m.routes
	switch {
	case snap.IsOffline():
		return "offline"
	case !snap.HasRoutes:
		return ""
	default:
		return fmt.Sprintf("%d routes", len(snap.Routes))
	}
}
