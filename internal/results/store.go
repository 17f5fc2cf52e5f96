// Package results persists simulation runs to a SQLite database so that
// large Monte Carlo runs can be compared across rule sets after the fact.
package results

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lox/blackjack/internal/statistics"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at       TEXT NOT NULL,
	strategy         TEXT NOT NULL,
	sessions         INTEGER NOT NULL,
	seed             INTEGER NOT NULL,
	bankroll         REAL NOT NULL,
	min_bet          INTEGER NOT NULL,
	num_decks        INTEGER NOT NULL,
	mean_ev          REAL,
	bankruptcy_rate  REAL
);
CREATE TABLE IF NOT EXISTS sessions (
	run_id          INTEGER NOT NULL REFERENCES runs(id),
	seed            INTEGER NOT NULL,
	ev              REAL NOT NULL,
	final_bankroll  REAL NOT NULL,
	bankrupt        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_run ON sessions(run_id);
`

// RunMeta describes one simulation run for the runs table.
type RunMeta struct {
	Strategy string
	Sessions int
	Seed     int64
	Bankroll float64
	MinBet   int
	NumDecks int
}

// Store wraps the SQLite database holding runs and per-session outcomes.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateRun inserts a run row and returns its id.
func (s *Store) CreateRun(meta RunMeta) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (created_at, strategy, sessions, seed, bankroll, min_bet, num_decks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		meta.Strategy, meta.Sessions, meta.Seed, meta.Bankroll, meta.MinBet, meta.NumDecks,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// AddSession records one session outcome for a run.
func (s *Store) AddSession(runID int64, r statistics.SessionResult) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (run_id, seed, ev, final_bankroll, bankrupt)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, r.Seed, r.EV, r.FinalBankroll, r.Bankrupt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FinishRun stores the aggregate figures on the run row.
func (s *Store) FinishRun(runID int64, stats *statistics.Statistics) error {
	_, err := s.db.Exec(
		`UPDATE runs SET mean_ev = ?, bankruptcy_rate = ? WHERE id = ?`,
		stats.Mean(), stats.BankruptcyRate(), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// SessionCount returns the number of recorded sessions for a run.
func (s *Store) SessionCount(runID int64) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
