package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/uniterm/internal/canvas"
	"github.com/five82/uniterm/internal/fetch"
	"github.com/five82/uniterm/internal/nav"
	"github.com/five82/uniterm/internal/prefs"
	"github.com/five82/uniterm/internal/render"
	"github.com/five82/uniterm/internal/state"
)

// CompositionLoader fetches compositions for composition screens.
type CompositionLoader interface {
	ByRoute(ctx context.Context, path []string, opts fetch.Options) (*canvas.ComponentInstance, error)
	ByID(ctx context.Context, id string, opts fetch.Options) (*canvas.ComponentInstance, error)
}

// Options configures the UI.
type Options struct {
	Context context.Context
	Loader  CompositionLoader
	Walker  *render.Walker
	Store   *state.Store
	Logger  *zap.Logger

	// StartLink is the deep link of the first screen. Empty opens the root
	// composition.
	StartLink string
	// Preview loads draft compositions on every screen.
	Preview bool

	LogPath  string
	PollTick time.Duration
	// RefreshEvery is the idle reload interval of composition screens. Zero
	// uses DefaultRefreshEvery; negative disables background reloads.
	RefreshEvery time.Duration
	ThemeName    string
	PrefsPath    string

	// Opener opens external URLs. Nil uses the system browser.
	Opener func(url string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	loader       CompositionLoader
	walker       *render.Walker
	store        *state.Store
	logger       *zap.Logger
	logPath      string
	prefsPath    string
	pollTick     time.Duration
	refreshEvery time.Duration
	opener       func(url string) error

	// UI state
	theme    Theme
	keys     keyMap
	spinner  spinner.Model
	markdown *markdownCache
	width    int
	height   int
	ready    bool
	showHelp bool
	preview  bool

	// Navigation stack; the last screen is shown.
	stack  []*screen
	nextID int

	// Routes from the background poller
	routes state.RoutesSnapshot

	flash   string
	flashAt time.Time
}

// New creates a new Bubble Tea model with the start screen pushed.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	refreshEvery := opts.RefreshEvery
	if refreshEvery == 0 {
		refreshEvery = DefaultRefreshEvery
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	walker := opts.Walker
	if walker == nil {
		walker = render.NewWalker(nil, render.WithLogger(logger))
	}

	opener := opts.Opener
	if opener == nil {
		opener = openExternal
	}

	theme := GetTheme(themeName)
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		ctx:          ctx,
		loader:       opts.Loader,
		walker:       walker,
		store:        opts.Store,
		logger:       logger.Named("ui"),
		logPath:      opts.LogPath,
		prefsPath:    prefsPath,
		pollTick:     pollTick,
		refreshEvery: refreshEvery,
		opener:       opener,
		theme:        theme,
		keys:         DefaultKeyMap(),
		spinner:      spin,
		markdown:     &markdownCache{},
		preview:      opts.Preview,
	}

	route, err := nav.Parse(opts.StartLink)
	if err != nil {
		m.logger.Warn("invalid start link, opening root", zap.String("link", opts.StartLink), zap.Error(err))
		route = nav.Route{Kind: nav.KindComposition}
		m.setFlash(err.Error())
	}
	m.stack = []*screen{m.newScreen(route)}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		tickCmd(m.pollTick),
		m.enterCmd(m.top(), false),
	}
	if m.store != nil {
		cmds = append(cmds, fetchRoutesCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		for _, s := range m.stack {
			m.layoutScreen(s)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case routesMsg:
		m.routes = state.RoutesSnapshot(msg)
		if s := m.top(); s.route.Kind == nav.KindRoutes {
			m.clampRouteSelection(s)
			m.paintScreen(s)
		}
		return m, nil

	case compositionMsg:
		m.handleComposition(msg)
		return m, nil

	case logsMsg:
		m.handleLogs(msg)
		return m, nil

	case openedMsg:
		m.handleOpened(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody(m.top()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		m.savePrefs()
		for _, s := range m.stack {
			m.paintScreen(s)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m.back()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh(m.top())

	case key.Matches(msg, m.keys.Preview):
		m.preview = !m.preview
		m.setFlash("Showing " + canvas.StateFor(m.preview).String() + " compositions")
		return m, m.refresh(m.top())

	case key.Matches(msg, m.keys.ViewRoutes):
		return m.push(nav.Route{Kind: nav.KindRoutes})

	case key.Matches(msg, m.keys.ViewLogs):
		return m.push(nav.Route{Kind: nav.KindLogs})
	}

	s := m.top()
	switch s.route.Kind {
	case nav.KindComposition:
		return m.handleCompositionKey(s, msg)
	case nav.KindRoutes:
		return m.handleRoutesKey(s, msg)
	case nav.KindLogs:
		return m.handleLogsKey(s, msg)
	}
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}

	if m.store != nil {
		cmds = append(cmds, fetchRoutesCmd(m.store))
	}

	if m.flash != "" && now.Sub(m.flashAt) > FlashDuration {
		m.flash = ""
	}

	s := m.top()
	switch s.route.Kind {
	case nav.KindComposition:
		if m.dueForRefresh(s, now) {
			cmds = append(cmds, m.loadCmd(s, true))
		}
	case nav.KindLogs:
		cmds = append(cmds, loadLogsCmd(m.logPath))
	}

	return m, tea.Batch(cmds...)
}

// push opens a new screen on top of the stack.
func (m Model) push(route nav.Route) (tea.Model, tea.Cmd) {
	if top := m.top(); top.route.Kind == route.Kind && route.Kind != nav.KindComposition && route.Kind != nav.KindServiceDetail {
		// Routes and logs are singletons; pressing their key again refreshes.
		return m, m.refresh(top)
	}
	s := m.newScreen(route)
	m.layoutScreen(s)
	m.stack = append(m.stack, s)
	m.logger.Debug("screen opened", zap.String("link", route.Link()), zap.Int("depth", len(m.stack)))
	return m, m.enterCmd(s, false)
}

// back pops the top screen and refreshes the one it reveals.
func (m Model) back() (tea.Model, tea.Cmd) {
	if len(m.stack) <= 1 {
		return m, nil
	}
	m.stack = m.stack[:len(m.stack)-1]
	s := m.top()
	m.paintScreen(s)
	return m, m.enterCmd(s, true)
}

// enterCmd loads whatever a screen needs when it becomes visible. Returning
// to a composition screen reloads it in the background.
func (m *Model) enterCmd(s *screen, returning bool) tea.Cmd {
	switch s.route.Kind {
	case nav.KindComposition:
		m.rememberLink(s)
		return m.loadCmd(s, returning)
	case nav.KindRoutes:
		if m.store != nil {
			return fetchRoutesCmd(m.store)
		}
	case nav.KindLogs:
		return loadLogsCmd(m.logPath)
	}
	return nil
}

// refresh reloads the given screen, keeping its content visible.
func (m *Model) refresh(s *screen) tea.Cmd {
	switch s.route.Kind {
	case nav.KindComposition:
		return m.loadCmd(s, true)
	default:
		return m.enterCmd(s, true)
	}
}

func (m *Model) top() *screen {
	return m.stack[len(m.stack)-1]
}

func (m *Model) findScreen(id int) *screen {
	for _, s := range m.stack {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashAt = time.Now()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p, _ := prefs.Load(m.prefsPath)
	p.Theme = m.theme.Name
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

// rememberLink stores the composition link so the next start reopens it.
func (m *Model) rememberLink(s *screen) {
	if m.prefsPath == "" {
		return
	}
	p, _ := prefs.Load(m.prefsPath)
	link := s.route.Link()
	if p.LastLink == link {
		return
	}
	p.LastLink = link
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

func (m Model) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight, 1)
}

// Messages

type tickMsg time.Time

type routesMsg state.RoutesSnapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchRoutesCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return routesMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	teaOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		teaOpts = append(teaOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, teaOpts...)
	if _, err := p.Run(); err != nil {
		if opts.Context != nil && opts.Context.Err() != nil {
			// Cancelled from outside, e.g. SIGTERM.
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
