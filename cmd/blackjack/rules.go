package main

import (
	"fmt"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/strategy"
)

// RuleFlags is the rule-set surface shared by every command. A rules file
// takes precedence over the individual flags; without one the flags (which
// default to the standard six-deck rules) are used directly.
type RuleFlags struct {
	Rules            string  `help:"Path to an HCL rules file" type:"path"`
	Bet              int     `default:"10" help:"Minimum bet"`
	Payout           float64 `default:"1.5" help:"Payout for natural blackjack"`
	NumDecks         int     `default:"6" help:"Number of 52 card decks in a shoe"`
	ShoeMinPercent   float64 `default:"20.0" help:"Percent of shoe remaining when game ends"`
	HitSoftSeventeen bool    `help:"Dealer hits soft seventeen"`
	DoubleAfterSplit bool    `default:"true" negatable:"" help:"Double after split allowed or disallowed"`
	LateSurrender    bool    `default:"true" negatable:"" help:"Late surrender allowed or disallowed"`
	MaxSplit         int     `default:"2" help:"Max number of splits allowed (2 splits = 4 hands)"`
}

// Options resolves the effective rule set.
func (r *RuleFlags) Options() (game.Options, error) {
	if r.Rules != "" {
		return game.LoadOptions(r.Rules)
	}
	return game.Options{
		MinBet:           r.Bet,
		Payout:           r.Payout,
		NumDecks:         r.NumDecks,
		ShoeMinPercent:   r.ShoeMinPercent,
		HitSoftSeventeen: r.HitSoftSeventeen,
		DoubleAfterSplit: r.DoubleAfterSplit,
		LateSurrender:    r.LateSurrender,
		MaxSplit:         r.MaxSplit,
	}, nil
}

// strategyByName maps a player strategy flag to an implementation.
func strategyByName(name string) (game.Strategy, error) {
	switch name {
	case "basic":
		return strategy.Basic{}, nil
	case "always-hit":
		return strategy.AlwaysHit{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
