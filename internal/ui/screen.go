package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/uniterm/internal/logtail"
	"github.com/five82/uniterm/internal/nav"
	"github.com/five82/uniterm/internal/state"
	"github.com/five82/uniterm/internal/view"
)

// screen is one entry of the navigation stack.
type screen struct {
	id       int
	route    nav.Route
	viewport viewport.Model

	// Composition screens
	load        state.Screen
	tree        view.Node
	actions     []view.Node
	focus       int
	lastAttempt time.Time

	// Routes screen
	selected int

	// Logs screen
	entries []logtail.Entry
	logErr  error
	follow  bool
}

func (m *Model) newScreen(route nav.Route) *screen {
	m.nextID++
	s := &screen{
		id:       m.nextID,
		route:    route,
		viewport: viewport.New(0, 0),
		follow:   true,
	}
	s.viewport.Style = lipgloss.NewStyle()
	return s
}

// title is the breadcrumb shown in the header.
func (s *screen) title() string {
	switch s.route.Kind {
	case nav.KindRoutes:
		return "Routes"
	case nav.KindLogs:
		return "Logs"
	case nav.KindServiceDetail:
		return serviceLabel(s.route)
	}
	if s.route.CompositionID != "" {
		return "id:" + s.route.CompositionID
	}
	if root := s.load.Snapshot().Composition; root != nil && root.Name != "" {
		return root.Name + " " + s.route.DisplayPath()
	}
	return s.route.DisplayPath()
}

// layoutScreen sizes the viewport to the terminal and repaints.
func (m *Model) layoutScreen(s *screen) {
	s.viewport.Width = max(m.width, 1)
	s.viewport.Height = m.bodyHeight()
	m.paintScreen(s)
}

// paintScreen refreshes the viewport content of s.
func (m *Model) paintScreen(s *screen) {
	if m.width == 0 {
		return
	}
	switch s.route.Kind {
	case nav.KindComposition:
		m.paintComposition(s)
	case nav.KindRoutes:
		m.paintRoutes(s)
	case nav.KindLogs:
		m.paintLogs(s)
	case nav.KindServiceDetail:
		s.viewport.SetContent(m.renderServiceDetail(s))
	}
}

// renderBody renders the area between header and footer.
func (m Model) renderBody(s *screen) string {
	body := s.viewport.View()
	if s.route.Kind == nav.KindComposition {
		body = m.renderCompositionBody(s)
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Render(body)
}

// scroll applies a navigation key to the viewport. It reports whether the
// key was a scroll key.
func (m Model) scroll(s *screen, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		s.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		s.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		s.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		s.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		s.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		s.viewport.HalfPageDown()
	default:
		return false
	}
	return true
}
