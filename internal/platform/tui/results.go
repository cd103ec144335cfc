package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treblecross/internal/storage"
)

// maxResults is the most matches loaded into the table.
const maxResults = 100

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the match results screen.
type ResultsModel struct {
	store     *storage.Store
	matches   []storage.MatchResult
	summary   storage.Summary
	table     table.Model
	help      help.Model
	keys      ResultsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewResultsModel creates a new results model.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	m := ResultsModel{
		store:  store,
		keys:   DefaultResultsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadMatches()
	return m
}

func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Mode", Width: 6},
		{Title: "Board", Width: 6},
		{Title: "Result", Width: 10},
		{Title: "Moves", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, summary, help
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

func (m *ResultsModel) loadMatches() {
	if m.store == nil {
		m.matches = nil
		m.updateTableRows()
		return
	}

	matches, err := m.store.RecentMatches(maxResults)
	if err != nil {
		m.matches = nil
	} else {
		m.matches = matches
	}
	if sum, err := m.store.Summarize(""); err == nil {
		m.summary = sum
	}
	m.updateTableRows()
}

func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, match := range m.matches {
		result := match.Result
		switch result {
		case storage.ResultDraw, storage.ResultAbandoned:
		default:
			result = result + " wins"
		}
		rows[i] = table.Row{
			match.CreatedAt.Format("Jan 02 15:04"),
			match.Mode,
			fmt.Sprintf("%d", match.BoardSize),
			result,
			fmt.Sprintf("%d", match.Moves),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 8)
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	header := centerText("Match Results", m.width)

	summary := fmt.Sprintf("%d matches, %d draws", m.summary.Total, m.summary.Draws)
	for side, wins := range m.summary.BySide {
		summary += fmt.Sprintf(", %s: %d", side, wins)
	}

	body := m.table.View()
	if len(m.matches) == 0 {
		body = centerText("No matches recorded yet.", m.width)
	}

	return "\n" + header + "\n\n" +
		centerText(summary, m.width) + "\n\n" +
		body + "\n" +
		m.help.View(m.keys)
}

// RunResults shows the match results screen. Returns true if the user
// pressed back (rather than quit).
func RunResults(store *storage.Store, width, height int) (bool, error) {
	model := NewResultsModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}

	resultsModel, ok := final.(ResultsModel)
	if !ok {
		return false, nil
	}
	return resultsModel.goingBack, nil
}
