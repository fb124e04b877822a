package score

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Store is the persistence capability for the board
type Store interface {
	// Load returns the persisted board, or a zeroed board when nothing usable is stored
	Load() ScoreBoard

	// Save overwrites the persisted board
	Save(b ScoreBoard) error
}

// JSONStore persists the board as a JSON array in a single file
type JSONStore struct {
	path string
	log  zerolog.Logger
}

// NewJSONStore returns a store backed by path
func NewJSONStore(path string, log zerolog.Logger) *JSONStore {
	return &JSONStore{path: path, log: log}
}

// Path returns the backing file
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Load() ScoreBoard {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("score file unreadable, starting fresh")
		}
		return New()
	}

	var b ScoreBoard
	if err := json.Unmarshal(data, &b); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("score file malformed, starting fresh")
		return New()
	}
	return b
}

func (s *JSONStore) Save(b ScoreBoard) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
