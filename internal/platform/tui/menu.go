package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tapball/internal/core"
	"github.com/vovakirdan/tapball/internal/registry"
	"github.com/vovakirdan/tapball/internal/storage"
)

// Menu rows: a blank line, the banner, a blank line, the prompt and a blank line
// come first, then each variant takes itemRows rows.
const (
	menuTop  = 5
	itemRows = 3
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
	pickStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem represents a selectable game variant in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	HighScore   int
	Plays       int
}

// MenuModel is the Bubble Tea model for the variant picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           *KeyMapper
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered variant with its stored best score and play count.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		// Missing stats just show as zero
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			item.HighScore, _ = store.HighScore(g.ID)
		}
		if st := stats[g.ID]; st != nil {
			item.Plays = st.GamesCount
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   NewKeyMapper(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles keys, clicks on a variant and resizes.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if _, row, ok := m.keys.MapMouse(msg); ok {
			if i, hit := itemAt(row, len(m.items)); hit {
				m.cursor = i
				return m.choose()
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// itemAt returns the variant drawn on a screen row. The blank spacer row is not a hit.
func itemAt(row, n int) (int, bool) {
	if row < menuTop {
		return 0, false
	}
	i, offset := (row-menuTop)/itemRows, (row-menuTop)%itemRows
	if i >= n || offset == itemRows-1 {
		return 0, false
	}
	return i, true
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.choose()
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// choose picks the item under the cursor and leaves the menu.
func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	picked := m.items[m.cursor]
	m.selected = &picked
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		bannerStyle.Render(centerText("T A P   T H E   B A L L", m.width)),
		"",
		dimStyle.Render(centerText("Pick a variant", m.width)),
		"",
	}

	for i, item := range m.items {
		head := fmt.Sprintf("%-24s %s %s", item.Title,
			bestStyle.Render(fmt.Sprintf("Best %d", item.HighScore)),
			dimStyle.Render(plays(item.Plays)))
		if i == m.cursor {
			head = pickStyle.Render("▶ ") + pickStyle.Render(head)
		} else {
			head = "  " + head
		}
		lines = append(lines,
			centerText(head, m.width),
			dimStyle.Render(centerText(item.Description, m.width)),
			"",
		)
	}

	lines = append(lines, centerText(m.help.ShortHelpView(m.keys.MenuHelp()), m.width))
	return strings.Join(lines, "\n")
}

func plays(n int) string {
	if n == 1 {
		return "1 play"
	}
	return fmt.Sprintf("%d plays", n)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, resized if the terminal changed.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu as its own program and reports what the player chose.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
