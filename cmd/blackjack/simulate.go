package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/results"
	"github.com/lox/blackjack/internal/simulator"
)

type SimulateCmd struct {
	RuleFlags

	Sessions int     `default:"100000" help:"Number of sessions to simulate"`
	Strategy string  `default:"basic" enum:"basic,always-hit" help:"Player strategy"`
	Bankroll float64 `default:"500" help:"Starting bankroll per session"`
	Seed     int64   `default:"0" help:"RNG seed (0 for random)"`
	Workers  int     `default:"0" help:"Concurrent workers (0 = GOMAXPROCS)"`
	DB       string  `help:"SQLite file to record the run" type:"path"`
	Verbose  bool    `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	opts, err := c.Options()
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = randutil.AutoSeed()
	}

	level := log.InfoLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	var store *results.Store
	if c.DB != "" {
		store, err = results.Open(c.DB)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	fmt.Printf("Simulating %d sessions of %s strategy (seed: %d)\n", c.Sessions, c.Strategy, seed)

	sim := simulator.New(simulator.Config{
		Sessions: c.Sessions,
		Bankroll: c.Bankroll,
		Strategy: c.Strategy,
		Options:  opts,
		Seed:     seed,
		Workers:  c.Workers,
		Logger:   logger,
		Store:    store,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}
	duration := time.Since(start)

	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== RESULTS ===\n")
	fmt.Printf("Sessions: %d in %v\n", stats.Sessions, duration.Round(time.Millisecond))
	fmt.Printf("House Edge: %.2f%%\n", stats.HouseEdge())
	fmt.Printf("Bankruptcy Chance: %.2f%%\n", stats.BankruptcyRate()*100.0)
	fmt.Printf("Mean EV: %.4f (95%% CI [%.4f, %.4f])\n", stats.Mean(), low, high)
	fmt.Printf("Median EV: %.4f, Std Dev: %.4f\n", stats.Median(), stats.StdDev())
	fmt.Printf("EV Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Printf("Mean Final Bankroll: $%.2f\n", stats.MeanFinalBankroll())
	return nil
}
