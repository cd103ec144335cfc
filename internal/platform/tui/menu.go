package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treblecross/internal/core"
	"github.com/vovakirdan/treblecross/internal/game"
)

// maxMenuBoardSize bounds the size selector; bigger boards stop
// fitting a terminal row.
const maxMenuBoardSize = 40

// menuEntry is one selectable row in the start menu.
type menuEntry struct {
	label  string
	gameID string // Empty for non-game rows
}

// MenuResult is what the start menu returns to the caller.
type MenuResult struct {
	GameID       string // Selected variant, empty when not starting a game
	BoardSize    int    // Board size chosen with the size selector
	WantsResults bool   // True if the user opened the results screen
	Quit         bool   // True if the user quit
	Config       core.RuntimeConfig
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	entries   []menuEntry
	cursor    int
	boardSize int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	result    MenuResult
}

// NewMenuModel creates a new start menu model.
func NewMenuModel(cfg core.RuntimeConfig, boardSize int) MenuModel {
	return MenuModel{
		entries: []menuEntry{
			{label: "Two players", gameID: "treblecross"},
			{label: "Play vs computer", gameID: "treblecross_cpu"},
			{label: "Match results", gameID: ""},
		},
		boardSize: core.Clamp(boardSize, game.MinBoardSize, maxMenuBoardSize),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation. Left/right
// adjust the board size; they apply from any row.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		m.result = MenuResult{Quit: true, Config: m.config}
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.boardSize = core.Max(m.boardSize-1, game.MinBoardSize)

	case MenuActionRight:
		m.boardSize = core.Min(m.boardSize+1, maxMenuBoardSize)

	case MenuActionSelect:
		entry := m.entries[m.cursor]
		m.quitting = true
		if entry.gameID == "" {
			m.result = MenuResult{WantsResults: true, BoardSize: m.boardSize, Config: m.config}
		} else {
			m.result = MenuResult{GameID: entry.gameID, BoardSize: m.boardSize, Config: m.config}
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T R E B L E C R O S S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Three in a row wins - lines wrap around the edge", m.width))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-20s", cursor, entry.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Board size: < %d >", m.boardSize), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("up/down select   left/right board size   enter start   q quit", m.width))

	return b.String()
}

// Result returns the menu outcome. Only meaningful once the menu has
// resolved (a selection was made or the user quit).
func (m MenuModel) Result() MenuResult {
	return m.result
}

// Resolved reports whether the menu has produced an outcome.
func (m MenuModel) Resolved() bool {
	return m.quitting
}

// RunMenu shows the start menu and returns the user's selection.
func RunMenu(cfg core.RuntimeConfig, boardSize int) (MenuResult, error) {
	model := NewMenuModel(cfg, boardSize)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true, Config: cfg}, err
	}

	menuModel, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true, Config: cfg}, nil
	}
	return menuModel.result, nil
}
