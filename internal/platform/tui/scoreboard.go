package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tapball/internal/games/tapball"
	"github.com/vovakirdan/tapball/internal/registry"
	"github.com/vovakirdan/tapball/internal/storage"
)

const (
	historyLimit = 100 // Sessions loaded per variant
	boardChrome  = 12  // Rows used by title, tabs, stats, borders and help
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	statStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Align(lipgloss.Center)
	statValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	boxStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	notice = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	failed = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 4)
)

// boardKeys are the scoreboard bindings. They also feed the help bar.
type boardKeys struct {
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Filter  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Toggles key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Filter, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Prev, k.Next}, {k.Filter, k.Toggles, k.Back, k.Quit}}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Prev:    key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "variant")),
		Next:    key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "variant")),
		Filter:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "difficulty")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Toggles: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

// difficultyFilter restricts the history to one difficulty. Zero shows all sessions.
type difficultyFilter int

const (
	filterAll difficultyFilter = iota
	filterEasy
	filterMedium
	filterHard
	filterCount
)

func (f difficultyFilter) String() string {
	if f == filterAll {
		return "All"
	}
	return tapball.Difficulty(f - 1).String()
}

func (f difficultyFilter) keep(e storage.ScoreEntry) bool {
	return f == filterAll || e.Difficulty == f.String()
}

// ScoreboardModel shows the session history of one variant at a time.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	current  int
	filter   difficultyFilter

	history []storage.ScoreEntry
	stats   *storage.GameStats
	loadErr error

	table table.Model
	help  help.Model
	keys  boardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on the first registered variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		help:     help.New(),
		keys:     newBoardKeys(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := 18
	if m.width > 70 {
		dateW = 24
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Difficulty", Width: 10},
			{Title: "Played", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// gameID returns the selected variant, or "" when nothing is registered.
func (m *ScoreboardModel) gameID() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// reload reads the selected variant from the store and refills the table.
func (m *ScoreboardModel) reload() {
	m.history, m.stats, m.loadErr = nil, nil, nil
	if id := m.gameID(); id != "" && m.store != nil {
		m.history, m.loadErr = m.store.TopScores(id, historyLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	rows := make([]table.Row, 0, len(m.history))
	for _, e := range m.history {
		if !m.filter.keep(e) {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", len(rows)+1),
			fmt.Sprintf("%d", e.Score),
			e.Difficulty,
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation between variants, the difficulty filter and scrolling.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % filterCount
			m.fillRows()
			return m, nil
		case key.Matches(msg, m.keys.Toggles):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the variant selection by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if n := len(m.variants); n > 0 {
		m.current = ((m.current+delta)%n + n) % n
		m.reload()
	}
}

// View renders tabs, statistics, the history table and the help bar.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	sections := []string{
		boardTitleStyle.Render("HIGH SCORES"),
		m.renderTabs(),
		m.renderStats(),
		boxStyle.Render(m.renderHistory()),
		m.help.View(m.keys),
	}
	for i, s := range sections {
		sections[i] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		name := variantName(v.Title)
		if i == m.current {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width && len(m.variants) > 0 {
		line = activeTabStyle.Render("< " + variantName(m.variants[m.current].Title) + " >")
	}
	return line + "\n"
}

func (m ScoreboardModel) renderStats() string {
	best, sessions, avg, last := "0", "0", "-", "never"
	if m.stats != nil {
		best = fmt.Sprintf("%d", m.stats.HighScore)
		sessions = fmt.Sprintf("%d", m.stats.GamesCount)
		if m.stats.GamesCount > 0 {
			avg = fmt.Sprintf("%.1f", m.stats.AvgScore)
			last = m.stats.LastPlayed.Format("Jan 02")
		}
	}

	cell := func(label, value string) string {
		return statStyle.Render(label + "\n" + statValueStyle.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Best", best),
		cell("Sessions", sessions),
		cell("Average", avg),
		cell("Last", last),
		cell("Showing", m.filter.String()),
	)
}

func (m ScoreboardModel) renderHistory() string {
	switch {
	case m.loadErr != nil:
		return failed.Render(fmt.Sprintf("Could not load scores:\n%v", m.loadErr))
	case m.store == nil:
		return notice.Render("Scores are not saved in this session.")
	case len(m.table.Rows()) == 0 && len(m.history) > 0:
		return notice.Render(fmt.Sprintf("No %s sessions yet.", m.filter))
	case len(m.history) == 0:
		return notice.Render("No scores recorded yet.\nTap the ball to set a high score!")
	}
	return m.table.View()
}

// variantName drops the shared "Tap the Ball" prefix from a variant title.
func variantName(title string) string {
	if rest, ok := strings.CutPrefix(title, "Tap the Ball: "); ok {
		return rest
	}
	if title == "Tap the Ball" {
		return "Classic"
	}
	return title
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// It returns true when the player went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
