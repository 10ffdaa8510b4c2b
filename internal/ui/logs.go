package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/uniterm/internal/logtail"
	"github.com/five82/uniterm/internal/nav"
)

// logsMsg carries a fresh tail of the log file.
type logsMsg struct {
	entries []logtail.Entry
	err     error
}

func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logsMsg{}
		}
		entries, err := logtail.Tail(path, LogTailLines)
		return logsMsg{entries: entries, err: err}
	}
}

// handleLogs stores the tail on every logs screen in the stack.
func (m *Model) handleLogs(msg logsMsg) {
	for _, s := range m.stack {
		if s.route.Kind != nav.KindLogs {
			continue
		}
		s.entries = msg.entries
		s.logErr = msg.err
		m.paintScreen(s)
	}
}

// paintLogs renders the log entries, one per line, colored by level.
func (m *Model) paintLogs(s *screen) {
	styles := m.theme.Styles()
	width := max(m.width-2, 10)

	var b strings.Builder
	if s.logErr != nil {
		b.WriteString(styles.DangerText.Render("Could not read log: " + s.logErr.Error()))
		b.WriteString("\n")
	}
	if len(s.entries) == 0 && s.logErr == nil {
		path := m.logPath
		if path == "" {
			path = "(no log file)"
		}
		b.WriteString(styles.MutedText.Render("No log entries yet in " + path))
	}
	for _, e := range s.entries {
		b.WriteString(m.formatLogEntry(e, styles, width))
		b.WriteString("\n")
	}
	s.viewport.SetContent(strings.TrimRight(b.String(), "\n"))
	if s.follow {
		s.viewport.GotoBottom()
	}
}

func (m *Model) formatLogEntry(e logtail.Entry, styles Styles, width int) string {
	if e.Raw != "" {
		return styles.MutedText.Render(truncate(e.Raw, width))
	}
	var parts []string
	if !e.Time.IsZero() {
		parts = append(parts, styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
	}
	if e.Level != "" {
		parts = append(parts, styles.LevelStyle(e.Level).Render(padRight(strings.ToUpper(e.Level), 5)))
	}
	if e.Logger != "" {
		parts = append(parts, styles.AccentText.Render(e.Logger))
	}
	parts = append(parts, styles.Text.Render(e.Message))
	for _, f := range e.Fields {
		parts = append(parts, styles.MutedText.Render(f.Key+"=")+styles.Text.Render(f.Value))
	}
	return strings.Join(parts, " ")
}

// handleLogsKey scrolls the log and toggles follow mode.
func (m Model) handleLogsKey(s *screen, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleFollow) {
		s.follow = !s.follow
		if s.follow {
			s.viewport.GotoBottom()
		}
		return m, nil
	}
	if m.scroll(s, msg) {
		// Following resumes only at the bottom.
		s.follow = s.viewport.AtBottom()
	}
	return m, nil
}
