// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one recorded session: everything needed to re-simulate it.
type Run struct {
	ID        string
	Variant   string
	Seed      int64
	BoardSize int
	CellSize  int
	TickRate  int
	Start     core.StartLayout
	Ticks     uint64
	Score     int
	Inputs    []core.KeyPress
	CreatedAt time.Time
}

// NewRun builds a run record for a finished session.
func NewRun(variant string, cfg core.RuntimeConfig, ticks uint64, inputs []core.KeyPress, score int) Run {
	return Run{
		Variant:   variant,
		Seed:      cfg.Seed,
		BoardSize: cfg.BoardSize,
		CellSize:  cfg.CellSize,
		TickRate:  cfg.TickRate,
		Start:     cfg.Start,
		Ticks:     ticks,
		Score:     score,
		Inputs:    inputs,
	}
}

// Runtime returns the game configuration the run was played with.
func (r Run) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		BoardSize: r.BoardSize,
		CellSize:  r.CellSize,
		TickRate:  r.TickRate,
		Seed:      r.Seed,
		Start:     r.Start,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			board_size INTEGER NOT NULL,
			cell_size INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			start TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			inputs TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns its ID. A new UUID is assigned when
// run.ID is empty.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	start, err := json.Marshal(run.Start)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode start layout: %w", err)
	}
	inputs := run.Inputs
	if inputs == nil {
		inputs = []core.KeyPress{}
	}
	encoded, err := json.Marshal(inputs)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode inputs: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs
		 (id, variant, seed, board_size, cell_size, tick_rate, start, ticks, score, inputs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Variant, run.Seed, run.BoardSize, run.CellSize, run.TickRate,
		string(start), int64(run.Ticks), run.Score, string(encoded),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

// RunByID retrieves a run with its input log.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, variant, seed, board_size, cell_size, tick_rate, start, ticks, score, inputs, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, board_size, cell_size, tick_rate, start, ticks, score, inputs, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		run       Run
		ticks     int64
		start     string
		inputs    string
		createdAt any
	)
	err := sc.Scan(
		&run.ID, &run.Variant, &run.Seed, &run.BoardSize, &run.CellSize, &run.TickRate,
		&start, &ticks, &run.Score, &inputs, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	run.Ticks = uint64(ticks)

	if err := json.Unmarshal([]byte(start), &run.Start); err != nil {
		return nil, fmt.Errorf("storage: cannot decode start layout of run %s: %w", run.ID, err)
	}
	if err := json.Unmarshal([]byte(inputs), &run.Inputs); err != nil {
		return nil, fmt.Errorf("storage: cannot decode inputs of run %s: %w", run.ID, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		run.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			run.CreatedAt = parsed
		}
	}

	return &run, nil
}
