package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/uniterm/internal/canvas"
	"github.com/five82/uniterm/internal/fetch"
	"github.com/five82/uniterm/internal/nav"
	"github.com/five82/uniterm/internal/render"
	"github.com/five82/uniterm/internal/state"
	"github.com/five82/uniterm/internal/view"
)

// compositionMsg carries the result of one composition load back to the
// screen that started it.
type compositionMsg struct {
	screenID    int
	generation  int
	composition *canvas.ComponentInstance
	err         error
	attempted   time.Time
}

// previewFor reports whether a route loads drafts.
func (m *Model) previewFor(route nav.Route) bool {
	return m.preview || route.Preview
}

// loadCmd starts a load for a composition screen. A forced load keeps the
// current content on screen while it runs.
func (m *Model) loadCmd(s *screen, force bool) tea.Cmd {
	if m.loader == nil {
		return nil
	}
	generation := s.load.Begin(force)
	route := s.route
	opts := fetch.Options{Preview: m.previewFor(route), Refresh: force}
	loader := m.loader
	parent := m.ctx
	id := s.id

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, LoadTimeout)
		defer cancel()

		var comp *canvas.ComponentInstance
		var err error
		if route.CompositionID != "" {
			comp, err = loader.ByID(ctx, route.CompositionID, opts)
		} else {
			comp, err = loader.ByRoute(ctx, route.Path, opts)
		}
		return compositionMsg{
			screenID:    id,
			generation:  generation,
			composition: comp,
			err:         err,
			attempted:   time.Now(),
		}
	}
}

// handleComposition applies a load result. Results for screens that were
// popped, or superseded by a newer load, are dropped.
func (m *Model) handleComposition(msg compositionMsg) {
	s := m.findScreen(msg.screenID)
	if s == nil {
		return
	}
	if msg.err == nil && msg.composition == nil {
		msg.err = fetch.ErrNotFound
	}
	if !s.load.Resolve(msg.generation, msg.composition, msg.err) {
		return
	}
	s.lastAttempt = msg.attempted

	if msg.err != nil {
		m.logger.Warn("composition load failed",
			zap.String("link", s.route.Link()),
			zap.Error(msg.err),
		)
		m.paintScreen(s)
		return
	}

	s.tree = m.walker.Render(msg.composition, render.Context{Preview: m.previewFor(s.route)})
	s.actions = view.Actions(s.tree)
	if s.focus >= len(s.actions) {
		s.focus = len(s.actions) - 1
	}
	if s.focus < 0 && len(s.actions) > 0 {
		s.focus = 0
	}
	m.paintScreen(s)
}

// dueForRefresh reports whether the composition screen should reload in the
// background. Failures stretch the interval with backoff.
func (m *Model) dueForRefresh(s *screen, now time.Time) bool {
	if m.refreshEvery <= 0 || s.lastAttempt.IsZero() {
		return false
	}
	snap := s.load.Snapshot()
	if snap.Busy() {
		return false
	}
	wait := state.Backoff(snap.ConsecutiveFailures, m.refreshEvery)
	return now.Sub(s.lastAttempt) >= wait
}

// paintComposition renders the view tree into the viewport and keeps the
// focused action visible.
func (m *Model) paintComposition(s *screen) {
	if s.tree.IsZero() {
		s.viewport.SetContent("")
		return
	}
	p := painter{
		styles:   m.theme.Styles(),
		width:    max(m.width-2, 10),
		focus:    s.focus,
		markdown: m.markdown,
	}
	if len(s.actions) == 0 {
		p.focus = -1
	}
	painted := p.paint(s.tree)
	s.viewport.SetContent(lipgloss.NewStyle().PaddingLeft(1).Render(painted))

	if line := focusLine(painted); line >= 0 {
		top := s.viewport.YOffset
		bottom := top + s.viewport.Height - 1
		switch {
		case line < top:
			s.viewport.SetYOffset(line)
		case line+2 > bottom:
			s.viewport.SetYOffset(line + 3 - s.viewport.Height)
		}
	}
}

// renderCompositionBody renders the spinner, the error, or the content.
func (m Model) renderCompositionBody(s *screen) string {
	styles := m.theme.Styles()
	snap := s.load.Snapshot()

	if snap.ShowSpinner() {
		text := m.spinner.View() + " " + styles.MutedText.Render("Loading "+s.route.DisplayPath()+"...")
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, text)
	}

	if snap.ShowError() {
		message := styles.DangerText.Width(min(m.width-4, 80)).Render(errorText(s.route, snap.Err))
		hint := styles.FaintText.Render("press r to retry")
		if snap.Refreshing {
			hint = m.spinner.View() + " " + styles.FaintText.Render("retrying...")
		}
		if snap.Composition == nil || s.tree.IsZero() {
			return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
				lipgloss.JoinVertical(lipgloss.Center, message, "", hint))
		}
		// Keep the last good content readable below the error.
		banner := lipgloss.JoinHorizontal(lipgloss.Top, " ", message, "  ", hint)
		vp := s.viewport
		vp.Height = max(s.viewport.Height-lipgloss.Height(banner), 1)
		return banner + "\n" + vp.View()
	}

	return s.viewport.View()
}

// errorText is the message shown for a failed load.
func errorText(route nav.Route, err error) string {
	if err == nil || errors.Is(err, fetch.ErrNotFound) {
		return fmt.Sprintf("Composition not found for path: %s. Make sure the composition exists in Uniform and is published.", route.DisplayPath())
	}
	return err.Error()
}

// handleCompositionKey handles focus, activation and scrolling.
func (m Model) handleCompositionKey(s *screen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextAction):
		m.moveFocus(s, 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevAction):
		m.moveFocus(s, -1)
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		if s.focus < 0 || s.focus >= len(s.actions) {
			return m, nil
		}
		return m.activate(*s.actions[s.focus].Action)
	}
	m.scroll(s, msg)
	return m, nil
}

func (m *Model) moveFocus(s *screen, delta int) {
	n := len(s.actions)
	if n == 0 {
		return
	}
	s.focus = ((s.focus+delta)%n + n) % n
	m.paintScreen(s)
}

// activate follows a button action.
func (m Model) activate(action view.Action) (tea.Model, tea.Cmd) {
	switch action.Kind {
	case view.ActionOpenURL:
		return m, openURLCmd(m.opener, action.Target)
	case view.ActionNavigate:
		route, err := nav.Parse(action.Target)
		if err != nil {
			m.logger.Warn("unknown link", zap.String("link", action.Target), zap.Error(err))
			m.setFlash(err.Error())
			return m, nil
		}
		return m.push(route)
	}
	return m, nil
}
