package simulator

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/results"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	opts := game.DefaultOptions()
	opts.NumDecks = 1

	return Config{
		Sessions: 40,
		Bankroll: 100,
		Strategy: "basic",
		Options:  opts,
		Seed:     42,
		Workers:  1,
		Clock:    quartz.NewMock(t),
	}
}

func TestSimulatorUnknownStrategy(t *testing.T) {
	sim := New(Config{Sessions: 1, Strategy: "card-counter"})
	_, err := sim.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestSimulatorRun(t *testing.T) {
	stats, err := New(testConfig(t)).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	assert.Equal(t, 40, stats.Sessions)
	assert.Len(t, stats.Values, 40)
	assert.GreaterOrEqual(t, stats.BankruptcyRate(), 0.0)
	assert.LessOrEqual(t, stats.BankruptcyRate(), 1.0)
}

func TestSimulatorDeterministic(t *testing.T) {
	a, err := New(testConfig(t)).Run(context.Background())
	require.NoError(t, err)
	b, err := New(testConfig(t)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Mean(), b.Mean())
	assert.Equal(t, a.Median(), b.Median())
	assert.Equal(t, a.Bankruptcies, b.Bankruptcies)
}

// Per-session seeds derive from the session index, so the worker count only
// changes aggregation order, not outcomes.
func TestSimulatorWorkerCountInvariant(t *testing.T) {
	serial, err := New(testConfig(t)).Run(context.Background())
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Workers = 4
	parallel, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, serial.Median(), parallel.Median())
	assert.InDelta(t, serial.Mean(), parallel.Mean(), 1e-12)
	assert.Equal(t, serial.Bankruptcies, parallel.Bankruptcies)
}

func TestSimulatorRecordsToStore(t *testing.T) {
	store, err := results.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg := testConfig(t)
	cfg.Sessions = 10
	cfg.Store = store

	stats, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Sessions)

	count, err := store.SessionCount(1)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}
