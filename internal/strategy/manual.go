package strategy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

var (
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	handNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

const separator = "~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~"

// Manual prompts the user for every bet and action on a plain terminal.
// Input and output are injected so the prompt loop is testable.
type Manual struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewManual creates an interactive strategy reading from in and writing to
// out.
func NewManual(in io.Reader, out io.Writer) *Manual {
	return &Manual{scanner: bufio.NewScanner(in), out: out}
}

// ShowHand implements game.Strategy.
func (m *Manual) ShowHand(hand *game.Hand) {
	fmt.Fprintln(m.out, renderHand(hand))
}

// ShowResult implements game.Strategy.
func (m *Manual) ShowResult(hand *game.Hand, result string) {
	fmt.Fprintf(m.out, "%s Result: %s\n", handNameStyle.Render(hand.Name()), resultStyle.Render(result))
}

// GetBet implements game.Strategy. ENTER keeps the minimum bet; "q" or end
// of input ends the session.
func (m *Manual) GetBet(minBet int, bankroll float64) int {
	fmt.Fprintln(m.out, separatorStyle.Render(separator))
	fmt.Fprintf(m.out, "Bankroll is $%g, minimum bet is $%d\n", bankroll, minBet)
	fmt.Fprintln(m.out, promptStyle.Render("Provide new bet or hit ENTER to use minimum bet (q to quit)"))

	if !m.scanner.Scan() {
		return 0
	}
	text := strings.TrimSpace(m.scanner.Text())
	if text == "q" || text == "quit" {
		return 0
	}

	bet, err := strconv.Atoi(text)
	if err != nil {
		return minBet
	}
	return bet
}

// GetAction implements game.Strategy, prompting until the user enters one
// of the legal actions in short ("h") or long ("hit") form.
func (m *Manual) GetAction(hand *game.Hand, actions []game.Action, upcard int) game.Action {
	prompts := make([]string, len(actions))
	for i, a := range actions {
		prompts[i] = prompt(a)
	}

	for {
		fmt.Fprintln(m.out, promptStyle.Render(strings.Join(prompts, " ")))
		if !m.scanner.Scan() {
			// Input is gone; Stand is always legal and ends the hand.
			return game.Stand
		}

		text := strings.ToLower(strings.TrimSpace(m.scanner.Text()))
		for _, a := range actions {
			if text == shortForm(a) || text == longForm(a) {
				return a
			}
		}
		fmt.Fprintln(m.out, errorStyle.Render("Invalid input, try again"))
	}
}

// renderHand colours each card by suit, e.g. "Player: A♠  9♦".
func renderHand(hand *game.Hand) string {
	cards := make([]string, 0, hand.Len())
	for _, c := range hand.Cards() {
		cards = append(cards, renderCard(c))
	}
	rendered := strings.Join(cards, "  ")
	if hand.Name() == "" {
		return rendered
	}
	return handNameStyle.Render(hand.Name()+":") + " " + rendered
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return redCardStyle.Render(c.String())
	}
	return blackCardStyle.Render(c.String())
}
