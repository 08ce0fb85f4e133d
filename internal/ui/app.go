package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/five82/shopwatch/internal/prefs"
	"github.com/five82/shopwatch/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewShops View = iota
	ViewProblems
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Board     *state.Board
	Endpoint  string
	LogPath   string
	PollTick  time.Duration
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	board     *state.Board
	endpoint  string
	logPath   string
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	layout      string
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	view state.View

	shopsViewport    viewport.Model
	problemsViewport viewport.Model
	problems         problemsState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}
	if p.Layout != prefs.LayoutList {
		p.Layout = prefs.LayoutGrid
	}

	return Model{
		ctx:         ctx,
		board:       opts.Board,
		endpoint:    opts.Endpoint,
		logPath:     opts.LogPath,
		prefsPath:   opts.PrefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(p.Theme),
		layout:      p.Layout,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewShops,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.board != nil {
		cmds = append(cmds, fetchViewCmd(m.board))
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
		m.help.Width = msg.Width
		m.ready = true
		m.resizeViewports()
		m.updateShopsViewport()
		m.updateProblemsViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case viewMsg:
		m.view = state.View(msg)
		m.updateShopsViewport()
		return m, nil

	case problemsMsg:
		m.problems.entries = msg.entries
		m.problems.err = msg.err
		m.problems.loaded = true
		m.updateProblemsViewport()
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
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

func (m Model) renderContent() string {
	if m.currentView == ViewProblems {
		return m.problemsViewport.View()
	}
	return m.shopsViewport.View()
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
		m.savePrefs()
		m.updateShopsViewport()
		m.updateProblemsViewport()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLayout):
		if m.layout == prefs.LayoutGrid {
			m.layout = prefs.LayoutList
		} else {
			m.layout = prefs.LayoutGrid
		}
		m.savePrefs()
		m.updateShopsViewport()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.currentView == ViewShops {
			return m.showProblems()
		}
		m.currentView = ViewShops
		return m, nil

	case key.Matches(msg, m.keys.ViewProblems):
		return m.showProblems()

	case key.Matches(msg, m.keys.ViewShops, m.keys.Escape):
		m.currentView = ViewShops
		return m, nil
	}

	vp := &m.shopsViewport
	if m.currentView == ViewProblems {
		vp = &m.problemsViewport
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		vp.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		vp.HalfPageUp()
	}
	return m, nil
}

func (m Model) showProblems() (tea.Model, tea.Cmd) {
	m.currentView = ViewProblems
	return m, refreshProblemsCmd(m.logPath) // Fetch immediately
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Layout: m.layout}); err != nil {
		log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
	}
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.board != nil {
		cmds = append(cmds, fetchViewCmd(m.board))
	}
	if m.currentView == ViewProblems {
		cmds = append(cmds, refreshProblemsCmd(m.logPath))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// resizeViewports fits both viewports between the header and command bar.
func (m *Model) resizeViewports() {
	height := max(m.height-2, 1)
	if m.shopsViewport.Width == 0 {
		m.shopsViewport = viewport.New(m.width, height)
		m.problemsViewport = viewport.New(m.width, height)
		return
	}
	m.shopsViewport.Width = m.width
	m.shopsViewport.Height = height
	m.problemsViewport.Width = m.width
	m.problemsViewport.Height = height
}

// Messages

type tickMsg time.Time

type viewMsg state.View

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchViewCmd(board *state.Board) tea.Cmd {
	return func() tea.Msg {
		return viewMsg(board.View())
	}
}

// Run starts the Bubble Tea program. Cancelling the options context ends it
// without an error.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
