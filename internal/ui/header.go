package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/uniterm/internal/canvas"
	"github.com/five82/uniterm/internal/nav"
)

// renderHeader renders the top bar: logo, breadcrumb, content state, load
// status and route poller status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)
	s := m.top()

	left := []string{bg.Render("uniterm", styles.Logo)}

	crumbs := make([]string, 0, len(m.stack))
	for _, entry := range m.stack {
		crumbs = append(crumbs, entry.title())
	}
	left = append(left, bg.Render(truncateMiddle(strings.Join(crumbs, " › "), max(m.width/2, 10)), styles.Text))

	var right []string
	if s.route.Kind == nav.KindComposition {
		stateName := strings.ToUpper(canvas.StateFor(m.previewFor(s.route)).String())
		style := styles.SuccessText
		if m.previewFor(s.route) {
			style = styles.WarningText.Bold(true)
		}
		right = append(right, bg.Render(stateName, style))

		snap := s.load.Snapshot()
		switch {
		case snap.Refreshing:
			right = append(right, bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+bg.Render("refreshing", styles.MutedText))
		case !snap.LastLoaded.IsZero():
			right = append(right, bg.Render("loaded "+snap.LastLoaded.Format("15:04:05"), styles.MutedText))
		}
	}
	if summary := m.routesSummary(); summary != "" {
		style := styles.MutedText
		if m.routes.IsOffline() {
			style = styles.DangerText
		}
		right = append(right, bg.Render(summary, style))
	}

	leftStr := bg.Join(left, "  ")
	rightStr := bg.Join(right, "  ")
	gap := m.width - 2 - lipgloss.Width(leftStr) - lipgloss.Width(rightStr)
	content := leftStr + sep + rightStr
	if gap > 0 {
		content = leftStr + bg.Spaces(gap) + rightStr
	}
	return styles.Header.Width(m.width).MaxHeight(headerHeight).Render(content)
}

// renderFooter renders the command bar, or the flash message when set.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	if m.flash != "" {
		return styles.Footer.Width(m.width).MaxHeight(footerHeight).Render(bg.Render(m.flash, styles.InfoText))
	}

	var hints [][2]string
	switch m.top().route.Kind {
	case nav.KindComposition:
		hints = [][2]string{{"tab", "next"}, {"enter", "open"}, {"r", "refresh"}, {"p", "preview"}}
	case nav.KindRoutes:
		hints = [][2]string{{"j/k", "select"}, {"enter", "open"}, {"r", "refresh"}}
	case nav.KindLogs:
		hints = [][2]string{{"j/k", "scroll"}, {"space", "follow"}}
	}
	if len(m.stack) > 1 {
		hints = append(hints, [2]string{"esc", "back"})
	}
	hints = append(hints, [2]string{"o", "routes"}, [2]string{"l", "logs"}, [2]string{"?", "help"}, [2]string{"e", "quit"})

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Render(h[0], styles.WarningText)+bg.Space()+bg.Render(h[1], styles.MutedText))
	}
	return styles.Footer.Width(m.width).MaxHeight(footerHeight).Render(bg.Join(parts, "  "))
}
