package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/strategy"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	RuleFlags

	Bankroll float64 `default:"500" help:"Starting bankroll"`
	Seed     int64   `default:"0" help:"RNG seed (0 for random)"`
	TUI      bool    `help:"Play in the full-screen terminal UI"`
	Training string  `help:"Grade decisions against a reference strategy" enum:",basic,always-hit" default:""`
	Verbose  bool    `help:"Verbose logging"`
}

func (c *PlayCmd) Run() error {
	opts, err := c.Options()
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = randutil.AutoSeed()
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	var final, ev float64
	if c.TUI {
		final, ev, err = tui.Run(opts, c.Bankroll, seed, logger)
		if err != nil {
			return err
		}
	} else {
		manual := strategy.NewManual(os.Stdin, os.Stdout)
		var strat game.Strategy = manual
		if c.Training != "" {
			reference, err := strategyByName(c.Training)
			if err != nil {
				return err
			}
			strat = strategy.NewTraining(manual, reference)
		}

		g := game.New(opts, randutil.New(seed), logger)
		final, ev = g.Play(strat, c.Bankroll)
	}

	fmt.Println()
	fmt.Printf("Final Bankroll: $%g\n", final)
	fmt.Printf("House Edge: %.2f%%\n", -100.0*ev)
	fmt.Printf("Seed: %d\n", seed)
	return nil
}
