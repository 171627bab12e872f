package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/rps-game/internal/engine"
	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/strategy"
)

type keyMap struct {
	Rock         key.Binding
	Paper        key.Binding
	Scissors     key.Binding
	NextStrategy key.Binding
	PrevStrategy key.Binding
	Command      key.Binding
	Quit         key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rock, k.Paper, k.Scissors, k.NextStrategy, k.Command, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rock, k.Paper, k.Scissors},
		{k.NextStrategy, k.PrevStrategy, k.Command, k.Quit},
	}
}

var keys = keyMap{
	Rock:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rock")),
	Paper:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paper")),
	Scissors:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scissors")),
	NextStrategy: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next strategy")),
	PrevStrategy: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev strategy")),
	Command:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
	Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type model struct {
	engine    *engine.Engine
	keys      keyMap
	help      help.Model
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   []string
	picker    int
	stats     models.Statistics
	pending   bool
	width     int
	height    int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Bold(true)

	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true).
			PaddingLeft(2)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	pickerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			PaddingRight(2)

	activeStyle = lipgloss.NewStyle().
			PaddingRight(2).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	outcomeStyles = map[models.Outcome]lipgloss.Style{
		models.PlayerWin:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
		models.ComputerWin: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		models.Tie:         lipgloss.NewStyle().Foreground(lipgloss.Color("#D7D75F")),
	}
)

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "rock, /strategy Most Used, /quit"
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		engine:    eng,
		keys:      keys,
		help:      help.New(),
		textInput: ti,
		viewport:  viewport.New(60, 20),
		picker:    pickerIndex(eng.StrategyName()),
		stats:     eng.Statistics(),
	}
}

func pickerIndex(name string) int {
	for i, n := range strategy.Names() {
		if n == name {
			return i
		}
	}
	return 0
}

func (m model) Init() tea.Cmd {
	return nil
}

type roundPlayedMsg struct {
	turn engine.Turn
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.textInput.Focused() {
			return m.updateInput(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rock):
			return m.play(models.Rock)
		case key.Matches(msg, m.keys.Paper):
			return m.play(models.Paper)
		case key.Matches(msg, m.keys.Scissors):
			return m.play(models.Scissors)
		case key.Matches(msg, m.keys.NextStrategy):
			return m.pick((m.picker + 1) % len(strategy.Names())), nil
		case key.Matches(msg, m.keys.PrevStrategy):
			n := len(strategy.Names())
			return m.pick((m.picker + n - 1) % n), nil
		case key.Matches(msg, m.keys.Command):
			m.textInput.Reset()
			return m, m.textInput.Focus()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = int(float64(msg.Width) * 0.70)
		m.viewport.Height = msg.Height - 8
		m.viewport.SetContent(m.renderLog())

	case roundPlayedMsg:
		m.pending = false
		m.stats = msg.turn.Stats
		r := msg.turn.Round
		m.appendLog(outcomeStyles[r.Outcome].Render(r.String()))
		if msg.turn.Commentary != "" {
			m.appendLog(commentStyle.Render(msg.turn.Commentary))
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.textInput.Blur()
		m.textInput.Reset()
		return m, nil
	case tea.KeyEnter:
		input := strings.TrimSpace(m.textInput.Value())
		m.textInput.Blur()
		m.textInput.Reset()
		return m.runCommand(input)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) runCommand(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}
	m.appendLog(userStyle.Render("> " + input))

	if input == "/quit" {
		return m, tea.Quit
	}
	if fields := strings.Fields(input); fields[0] == "/strategy" {
		if m.pending {
			m.appendLog("Wait for the current round to finish.")
			return m, nil
		}
		m.engine.SetStrategy(strings.Join(fields[1:], " "))
		m.picker = pickerIndex(m.engine.StrategyName())
		m.appendLog("Computer strategy: " + m.engine.StrategyName())
		return m, nil
	}
	move, err := models.ParseMove(input)
	if err != nil {
		m.appendLog(fmt.Sprintf("Unknown command %q", input))
		return m, nil
	}
	return m.play(move)
}

func (m model) play(move models.Move) (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	m.pending = true
	return m, m.playRound(move)
}

// pick is ignored while a round is in flight so a switch only ever affects
// the next round.
func (m model) pick(i int) model {
	if m.pending {
		return m
	}
	m.picker = i
	m.engine.SetStrategy(strategy.Names()[i])
	m.appendLog("Computer strategy: " + m.engine.StrategyName())
	return m
}

func (m *model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m model) View() string {
	header := titleStyle.Render("ROCK PAPER SCISSORS")
	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	parts := []string{header, "", mainView, "", m.renderPicker()}
	if m.textInput.Focused() {
		parts = append(parts, m.textInput.View())
	}
	parts = append(parts, m.help.View(m.keys))

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m model) renderPicker() string {
	var items []string
	for i, name := range strategy.Names() {
		if i == m.picker {
			items = append(items, activeStyle.Render(name))
		} else {
			items = append(items, pickerStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m model) renderState() string {
	score := titleStyle.Render("SCORE") + "\n" +
		fmt.Sprintf("Player Wins:   %d\nComputer Wins: %d\nTies:          %d\n\n", m.stats.PlayerWins, m.stats.ComputerWins, m.stats.Ties)

	strat := titleStyle.Render("COMPUTER") + "\n" + m.engine.StrategyName() + "\n"
	if m.pending {
		strat += "(thinking...)\n"
	}

	stateWidth := int(float64(m.width) * 0.25)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(score + strat)
}

func (m model) renderLog() string {
	if len(m.gameLog) == 0 {
		return "Throw r, p or s to play a round."
	}
	return strings.Join(m.gameLog, "\n")
}

func (m model) playRound(move models.Move) tea.Cmd {
	return func() tea.Msg {
		return roundPlayedMsg{m.engine.PlayRound(context.Background(), move)}
	}
}

// setupLogging points the standard logger at logFile, or discards log
// output when logFile is empty. Either way nothing is written to the
// terminal the program draws on.
func setupLogging(logFile string) (*os.File, error) {
	if logFile == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(logFile, "rps")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Run starts the game. When logFile is set the standard logger writes
// there for the lifetime of the program; otherwise logging is off.
func Run(eng *engine.Engine, logFile string) error {
	f, err := setupLogging(logFile)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Close()
	}

	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
