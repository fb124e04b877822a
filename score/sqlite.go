package score

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

const createScoresTableSQL = `
CREATE TABLE IF NOT EXISTS scores (
    difficulty TEXT    NOT NULL,
    fixed      INTEGER NOT NULL,
    width      INTEGER,
    height     INTEGER,
    last       INTEGER NOT NULL DEFAULT 0,
    best       INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (difficulty, fixed)
);
`

const upsertScoreSQL = `
INSERT INTO scores (difficulty, fixed, width, height, last, best)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(difficulty, fixed) DO UPDATE SET
    width = excluded.width,
    height = excluded.height,
    last = excluded.last,
    best = excluded.best
`

// SQLiteStore persists the board in a SQLite table, one row per mode combination
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenSQLiteStore opens (and creates if missing) the database at path
func OpenSQLiteStore(path string, log zerolog.Logger) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(createScoresTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create scores table: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load() ScoreBoard {
	b, err := s.load()
	if err != nil {
		s.log.Warn().Err(err).Msg("score table unreadable, starting fresh")
		return New()
	}
	return b
}

func (s *SQLiteStore) load() (ScoreBoard, error) {
	rows, err := s.db.Query(`SELECT difficulty, fixed, last, best FROM scores`)
	if err != nil {
		return ScoreBoard{}, err
	}
	defer rows.Close()

	b := New()
	for rows.Next() {
		var (
			name  string
			fixed bool
			rec   Record
		)
		if err := rows.Scan(&name, &fixed, &rec.Last, &rec.Best); err != nil {
			return ScoreBoard{}, err
		}
		d, err := parseDifficulty(name)
		if err != nil {
			return ScoreBoard{}, err
		}
		m := core.SizeAuto
		if fixed {
			m = core.SizeFixed
		}
		b.scores[b.index(d, m)].Record = rec
	}
	return b, rows.Err()
}

// Save upserts every entry in one transaction
func (s *SQLiteStore) Save(b ScoreBoard) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	for _, sc := range b.scores {
		var width, height sql.NullInt64
		fixed := sc.Size == core.SizeFixed
		if fixed {
			width = sql.NullInt64{Int64: constants.FixedScreenWidth, Valid: true}
			height = sql.NullInt64{Int64: constants.FixedScreenHeight, Valid: true}
		}
		if _, err := tx.Exec(upsertScoreSQL,
			sc.Difficulty.String(), fixed, width, height, sc.Record.Last, sc.Record.Best); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert %s: %w", sc.Label(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
