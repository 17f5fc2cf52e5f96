// Package simulator runs large batches of independent blackjack sessions
// to estimate the expected value and bankruptcy risk of a playing policy
// under one rule set.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/results"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

// progressEvery is how many completed sessions pass between progress logs.
const progressEvery = 10000

// Config holds configuration for running simulations.
type Config struct {
	Sessions int
	Bankroll float64
	Strategy string // "basic" or "always-hit"
	Options  game.Options
	Seed     int64
	Workers  int            // defaults to GOMAXPROCS
	Clock    quartz.Clock   // defaults to the real clock; injectable for tests
	Logger   *log.Logger    // defaults to a discarding logger
	Store    *results.Store // optional persistence
}

// Simulator plays many sessions of a fixed strategy and aggregates the
// outcomes.
type Simulator struct {
	config Config
	clock  quartz.Clock
	logger *log.Logger
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{config: config, clock: clock, logger: logger}
}

// Run executes the simulation and returns the aggregated statistics. Each
// session gets its own seed derived from the master seed, so a run is fully
// reproducible and sessions can be fanned out across workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if _, err := newStrategy(s.config.Strategy); err != nil {
		return nil, err
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var runID int64
	if s.config.Store != nil {
		var err error
		runID, err = s.config.Store.CreateRun(results.RunMeta{
			Strategy: s.config.Strategy,
			Sessions: s.config.Sessions,
			Seed:     s.config.Seed,
			Bankroll: s.config.Bankroll,
			MinBet:   s.config.Options.MinBet,
			NumDecks: s.config.Options.NumDecks,
		})
		if err != nil {
			return nil, fmt.Errorf("create run: %w", err)
		}
	}

	grp, ctx := errgroup.WithContext(ctx)
	resultCh := make(chan statistics.SessionResult)

	for w := 0; w < workers; w++ {
		w := w
		grp.Go(func() error {
			for i := w; i < s.config.Sessions; i += workers {
				result, err := s.playSession(s.config.Seed + int64(i))
				if err != nil {
					return err
				}
				select {
				case resultCh <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- grp.Wait()
		close(resultCh)
	}()

	stats := &statistics.Statistics{}
	start := s.clock.Now()
	for result := range resultCh {
		stats.Add(result)
		if s.config.Store != nil {
			if err := s.config.Store.AddSession(runID, result); err != nil {
				return nil, err
			}
		}
		if stats.Sessions%progressEvery == 0 {
			s.logger.Info("simulation progress",
				"sessions", stats.Sessions,
				"house_edge", fmt.Sprintf("%.2f%%", stats.HouseEdge()),
				"elapsed", s.clock.Since(start),
			)
		}
	}
	if err := <-done; err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	if s.config.Store != nil {
		if err := s.config.Store.FinishRun(runID, stats); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// playSession plays one full session with its own deterministic RNG.
func (s *Simulator) playSession(seed int64) (statistics.SessionResult, error) {
	strat, err := newStrategy(s.config.Strategy)
	if err != nil {
		return statistics.SessionResult{}, err
	}

	g := game.New(s.config.Options, randutil.New(seed), s.logger)
	final, ev := g.Play(strat, s.config.Bankroll)

	return statistics.SessionResult{
		Seed:          seed,
		EV:            ev,
		FinalBankroll: final,
		Bankrupt:      final == 0,
	}, nil
}

// newStrategy maps a strategy name to an implementation.
func newStrategy(name string) (game.Strategy, error) {
	switch name {
	case "basic":
		return strategy.Basic{}, nil
	case "always-hit":
		return strategy.AlwaysHit{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
