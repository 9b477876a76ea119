// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists matching runs in SQLite so that an unchanged set
// of inputs is not evaluated twice, and exports stored runs as YAML or JSON.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/menu-engine/pkg/types"
)

const (
	dbFile = "results.db"

	// timeLayout is fixed width so that stored timestamps sort as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

var (
	// ErrRunNotFound is returned when no stored run matches a lookup.
	ErrRunNotFound = errors.New("run not found")

	// ErrAmbiguousRun is returned when a run id prefix matches several runs.
	ErrAmbiguousRun = errors.New("run id prefix matches more than one run")
)

// Store manages the results SQLite database.
type Store struct {
	db  *sql.DB
	dir string
}

// NewStore opens or creates the results database at ResultsDir/results.db.
// It creates the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dir := cfg.ResultsDir
	if dir == "" {
		dir = "results"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string { return s.dir }

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			fingerprint TEXT NOT NULL,
			created_at TEXT NOT NULL,
			questions INTEGER NOT NULL,
			recipes INTEGER NOT NULL,
			matched INTEGER NOT NULL,
			unmatched INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_fingerprint ON runs(fingerprint)`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			row_id INTEGER NOT NULL,
			question TEXT NOT NULL,
			matches TEXT NOT NULL,
			ids TEXT NOT NULL,
			error TEXT,
			PRIMARY KEY (run_id, position)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Fingerprint hashes the contents of the input files together with any
// extra parameters that change matching output. An empty path contributes
// a marker so that positions stay significant.
func Fingerprint(paths []string, params ...string) (string, error) {
	h := sha256.New()
	for _, p := range paths {
		if p == "" {
			io.WriteString(h, "-\x00")
			continue
		}
		f, err := os.Open(p)
		if err != nil {
			return "", fmt.Errorf("fingerprinting %s: %w", p, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("fingerprinting %s: %w", p, err)
		}
		io.WriteString(h, "\x00")
	}
	for _, p := range params {
		io.WriteString(h, p)
		io.WriteString(h, "\x00")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FindRun returns the most recent run stored under fingerprint.
func (s *Store) FindRun(ctx context.Context, fingerprint string) (types.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE fingerprint = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`, fingerprint)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Run{}, ErrRunNotFound
	}
	return run, err
}

// Run returns the run whose id is, or starts with, id.
func (s *Store) Run(ctx context.Context, id string) (types.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ? OR id LIKE ? || '%' LIMIT 2`, id, id)
	if err != nil {
		return types.Run{}, fmt.Errorf("querying run: %w", err)
	}
	defer rows.Close()

	var found []types.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return types.Run{}, err
		}
		if run.ID == id {
			return run, nil
		}
		found = append(found, run)
	}
	if err := rows.Err(); err != nil {
		return types.Run{}, fmt.Errorf("iterating runs: %w", err)
	}

	switch len(found) {
	case 0:
		return types.Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	case 1:
		return found[0], nil
	default:
		return types.Run{}, fmt.Errorf("%w: %s", ErrAmbiguousRun, id)
	}
}

// Runs lists stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]types.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// SaveRun stores annotated questions as a new run in one transaction and
// returns the run record.
func (s *Store) SaveRun(ctx context.Context, fingerprint string, recipes int, questions []types.Question) (types.Run, error) {
	run := types.Run{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint,
		CreatedAt:   time.Now().UTC(),
		Questions:   len(questions),
		Recipes:     recipes,
	}
	for _, q := range questions {
		switch {
		case q.Error != "":
			run.Failed++
		case len(q.MatchingRecipes) > 0:
			run.Matched++
		default:
			run.Unmatched++
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Run{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, fingerprint, created_at, questions, recipes, matched, unmatched, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Fingerprint, run.CreatedAt.Format(timeLayout),
		run.Questions, run.Recipes, run.Matched, run.Unmatched, run.Failed,
	)
	if err != nil {
		return types.Run{}, fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, position, row_id, question, matches, ids, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return types.Run{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, q := range questions {
		questionJSON, err := json.Marshal(q)
		if err != nil {
			return types.Run{}, fmt.Errorf("encoding question %d: %w", q.RowID, err)
		}
		matchesJSON, _ := json.Marshal(nonNilStrings(q.MatchingRecipes))
		idsJSON, _ := json.Marshal(nonNilIDs(q.MatchingRecipeIDs))
		_, err = stmt.ExecContext(ctx,
			run.ID, i, q.RowID, string(questionJSON),
			string(matchesJSON), string(idsJSON), q.Error,
		)
		if err != nil {
			return types.Run{}, fmt.Errorf("inserting result %d: %w", q.RowID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.Run{}, fmt.Errorf("committing run: %w", err)
	}
	return run, nil
}

// Results returns the annotated questions of a run in their original order.
func (s *Store) Results(ctx context.Context, runID string) ([]types.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question, matches, ids, error FROM results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var questions []types.Question
	for rows.Next() {
		var questionJSON, matchesJSON, idsJSON string
		var errText sql.NullString
		if err := rows.Scan(&questionJSON, &matchesJSON, &idsJSON, &errText); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}

		var q types.Question
		if err := json.Unmarshal([]byte(questionJSON), &q); err != nil {
			return nil, fmt.Errorf("decoding question: %w", err)
		}
		q.MatchingRecipes = []string{}
		q.MatchingRecipeIDs = []types.DishID{}
		json.Unmarshal([]byte(matchesJSON), &q.MatchingRecipes)
		json.Unmarshal([]byte(idsJSON), &q.MatchingRecipeIDs)
		q.Error = errText.String
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

const runColumns = `id, fingerprint, created_at, questions, recipes, matched, unmatched, failed`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (types.Run, error) {
	var run types.Run
	var created string
	err := sc.Scan(&run.ID, &run.Fingerprint, &created,
		&run.Questions, &run.Recipes, &run.Matched, &run.Unmatched, &run.Failed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Run{}, err
		}
		return types.Run{}, fmt.Errorf("scanning run: %w", err)
	}
	if t, perr := time.Parse(timeLayout, created); perr == nil {
		run.CreatedAt = t
	}
	return run, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilIDs(ids []types.DishID) []types.DishID {
	if ids == nil {
		return []types.DishID{}
	}
	return ids
}
