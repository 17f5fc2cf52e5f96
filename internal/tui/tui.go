// Package tui is the interactive Bubble Tea table. The engine runs in a
// goroutine behind a Bridge strategy; the model here only renders state and
// answers prompts.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// promptMode tracks what input the engine is currently waiting on.
type promptMode int

const (
	promptNone promptMode = iota
	promptBet
	promptAction
)

// Messages sent into the program by the Bridge and the session goroutine.
type (
	logMsg       string
	betPromptMsg struct {
		minBet   int
		bankroll float64
	}
	actionPromptMsg struct {
		hand    string
		actions []game.Action
	}
	sessionDoneMsg struct {
		final float64
		ev    float64
	}
)

// Model is the Bubble Tea model for an interactive session.
type Model struct {
	logger *log.Logger
	bridge *Bridge

	logViewport viewport.Model
	betInput    textinput.Model

	gameLog  []string
	mode     promptMode
	minBet   int
	bankroll float64
	actions  []game.Action
	finished bool
	quitting bool

	width       int
	height      int
	initialized bool
}

// NewModel creates the TUI model for a session driven through bridge.
func NewModel(bridge *Bridge, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "bet amount"
	ti.CharLimit = 12
	ti.Width = 20
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		bridge:      bridge,
		logViewport: vp,
		betInput:    ti,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 2
		m.logViewport.Height = msg.Height - 6
		m.initialized = true
		m.refreshLog()

	case logMsg:
		m.appendLog(string(msg))

	case betPromptMsg:
		m.mode = promptBet
		m.minBet = msg.minBet
		m.bankroll = msg.bankroll
		m.betInput.SetValue("")
		cmds = append(cmds, m.betInput.Focus())

	case actionPromptMsg:
		m.mode = promptAction
		m.actions = msg.actions
		m.appendLog(msg.hand)

	case sessionDoneMsg:
		m.mode = promptNone
		m.finished = true
		m.appendLog("")
		m.appendLog(resultStyle.Render(fmt.Sprintf("Final Bankroll: $%g", msg.final)))
		m.appendLog(resultStyle.Render(fmt.Sprintf("House Edge: %.2f%%", -100.0*msg.ev)))
		m.appendLog(helpStyle.Render("Press q to exit"))

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}

	if m.mode == promptBet {
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey routes keys by prompt mode. Returning a non-nil command ends
// update handling for the key.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if key == "ctrl+c" {
		return m.quit()
	}

	switch m.mode {
	case promptBet:
		switch key {
		case "q", "esc":
			return m.quit()
		case "enter":
			text := strings.TrimSpace(m.betInput.Value())
			bet := m.minBet
			if text != "" {
				if parsed, err := strconv.Atoi(text); err == nil {
					bet = parsed
				}
			}
			m.mode = promptNone
			m.betInput.Blur()
			m.bridge.betCh <- bet
		}

	case promptAction:
		for _, a := range m.actions {
			if key == actionKey(a) {
				m.mode = promptNone
				m.bridge.actCh <- a
				return nil
			}
		}

	default:
		if m.finished && (key == "q" || key == "esc" || key == "enter") {
			m.quitting = true
			return tea.Sequence(tea.ClearScreen, tea.Quit)
		}
	}
	return nil
}

// quit answers any pending prompt so the engine goroutine can unwind, then
// stops the program.
func (m *Model) quit() tea.Cmd {
	switch m.mode {
	case promptBet:
		m.bridge.betCh <- 0
	case promptAction:
		// Stand is always legal and finishes the hand.
		m.bridge.actCh <- game.Stand
	}
	m.mode = promptNone
	m.quitting = true
	return tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logViewport.SetContent(gameLogStyle.Render(strings.Join(m.gameLog, "\n")))
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(m.logViewport.View())
	b.WriteString("\n")

	switch m.mode {
	case promptBet:
		b.WriteString(bankrollStyle.Render(fmt.Sprintf("Bankroll $%g — minimum bet $%d", m.bankroll, m.minBet)))
		b.WriteString("\n")
		b.WriteString(m.betInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("ENTER to bet (blank = minimum) · q to quit"))
	case promptAction:
		prompts := make([]string, len(m.actions))
		for i, a := range m.actions {
			prompts[i] = actionPrompt(a)
		}
		b.WriteString(actionsStyle.Render(strings.Join(prompts, "  ")))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press the bracketed key"))
	default:
		b.WriteString("\n")
	}

	return b.String()
}

// actionKey is the single key bound to an action.
func actionKey(a game.Action) string {
	switch a {
	case game.Hit:
		return "h"
	case game.Stand:
		return "s"
	case game.Surrender:
		return "r"
	case game.Double:
		return "d"
	case game.Split:
		return "p"
	default:
		return ""
	}
}

// actionPrompt is the display form with the bound key bracketed.
func actionPrompt(a game.Action) string {
	switch a {
	case game.Hit:
		return "[H]it"
	case game.Stand:
		return "[S]tand"
	case game.Surrender:
		return "Su[r]render"
	case game.Double:
		return "[D]ouble"
	case game.Split:
		return "S[p]lit"
	default:
		return "?"
	}
}

// Run plays one interactive session in the TUI and returns the final
// bankroll and EV once the user quits or the session ends.
func Run(opts game.Options, bankroll float64, seed int64, logger *log.Logger) (float64, float64, error) {
	bridge := NewBridge()
	model := NewModel(bridge, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	bridge.Attach(program)

	type outcome struct {
		final float64
		ev    float64
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		g := game.New(opts, randutil.New(seed), logger)
		final, ev := g.Play(bridge, bankroll)
		outcomeCh <- outcome{final: final, ev: ev}
		program.Send(sessionDoneMsg{final: final, ev: ev})
	}()

	if _, err := program.Run(); err != nil {
		return 0, 0, fmt.Errorf("running TUI: %w", err)
	}

	// The program is gone; keep answering any prompt the engine is still
	// blocked on (quit during a bet, stand out a hand in flight) until the
	// session unwinds.
	for {
		select {
		case result := <-outcomeCh:
			return result.final, result.ev, nil
		case bridge.betCh <- 0:
		case bridge.actCh <- game.Stand:
		}
	}
}
