package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Bridge implements game.Strategy on top of the TUI. The engine runs on its
// own goroutine and every synchronous Strategy call is converted into a
// message to the Bubble Tea program; the call then blocks on a response
// channel until the user answers. The engine never re-enters itself, so one
// response channel per prompt kind is enough.
type Bridge struct {
	program *tea.Program
	betCh   chan int
	actCh   chan game.Action
}

// NewBridge creates an unattached bridge; call Attach once the program
// exists.
func NewBridge() *Bridge {
	return &Bridge{
		betCh: make(chan int, 1),
		actCh: make(chan game.Action, 1),
	}
}

// Attach wires the bridge to its program.
func (b *Bridge) Attach(program *tea.Program) {
	b.program = program
}

// GetBet implements game.Strategy, blocking until the user places a bet or
// quits.
func (b *Bridge) GetBet(minBet int, bankroll float64) int {
	b.program.Send(betPromptMsg{minBet: minBet, bankroll: bankroll})
	return <-b.betCh
}

// GetAction implements game.Strategy, blocking until the user picks one of
// the legal actions.
func (b *Bridge) GetAction(hand *game.Hand, actions []game.Action, upcard int) game.Action {
	b.program.Send(actionPromptMsg{hand: renderHand(hand), actions: actions})
	return <-b.actCh
}

// ShowHand implements game.Strategy.
func (b *Bridge) ShowHand(hand *game.Hand) {
	b.program.Send(logMsg(renderHand(hand)))
}

// ShowResult implements game.Strategy.
func (b *Bridge) ShowResult(hand *game.Hand, result string) {
	b.program.Send(logMsg(handInfoStyle.Render(hand.Name()) + " Result: " + resultStyle.Render(result)))
}

// renderHand colours each card by suit.
func renderHand(hand *game.Hand) string {
	cards := make([]string, 0, hand.Len())
	for _, c := range hand.Cards() {
		cards = append(cards, renderCard(c))
	}
	rendered := strings.Join(cards, "  ")
	if hand.Name() == "" {
		return rendered
	}
	return handInfoStyle.Render(hand.Name()+":") + " " + rendered
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return redCardStyle.Render(c.String())
	}
	return blackCardStyle.Render(c.String())
}
