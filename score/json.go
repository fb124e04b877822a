package score

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

// entryJSON is one element of the persisted array
type entryJSON struct {
	Difficulty string  `json:"difficulty"`
	Size       *[2]int `json:"size"`
	Score      Record  `json:"score"`
}

var fixedSize = [2]int{constants.FixedScreenWidth, constants.FixedScreenHeight}

// MarshalJSON encodes the board as an array of entryCount objects
func (b ScoreBoard) MarshalJSON() ([]byte, error) {
	entries := make([]entryJSON, 0, entryCount)
	for _, s := range b.scores {
		e := entryJSON{Difficulty: s.Difficulty.String(), Score: s.Record}
		if s.Size == core.SizeFixed {
			size := fixedSize
			e.Size = &size
		}
		entries = append(entries, e)
	}
	return json.Marshal(entries)
}

// UnmarshalJSON decodes the persisted array, requiring exactly one entry per mode combination
func (b *ScoreBoard) UnmarshalJSON(data []byte) error {
	var entries []entryJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	if len(entries) != entryCount {
		return fmt.Errorf("expected %d entries, got %d", entryCount, len(entries))
	}

	board := New()
	seen := make(map[int]bool, entryCount)
	for _, e := range entries {
		d, err := parseDifficulty(e.Difficulty)
		if err != nil {
			return err
		}
		m := core.SizeAuto
		if e.Size != nil {
			m = core.SizeFixed
		}

		i := board.index(d, m)
		if seen[i] {
			return fmt.Errorf("duplicate entry for %v/%v", d, m)
		}
		seen[i] = true
		board.scores[i].Record = e.Score
	}

	*b = board
	return nil
}

func parseDifficulty(s string) (core.Difficulty, error) {
	for _, d := range core.Difficulties {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
