// Package score keeps per-mode last and best scores and persists them between sessions.
package score

import (
	"fmt"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/render"
)

// Record is the last and best score of one game mode. Best never decreases.
type Record struct {
	Last uint64 `json:"last"`
	Best uint64 `json:"best"`
}

// Score is the record of one Difficulty x SizeMode combination
type Score struct {
	Difficulty core.Difficulty
	Size       core.SizeMode
	Record     Record
}

// Label returns the board label, e.g. "Hard 80x25" or "Easy Full"
func (s Score) Label() string {
	if s.Size == core.SizeFixed {
		return fmt.Sprintf("%s %dx%d", s.Difficulty, constants.FixedScreenWidth, constants.FixedScreenHeight)
	}
	return s.Difficulty.String() + " " + constants.LabelAutoFit
}

// entryCount is the number of mode combinations the board tracks
const entryCount = len(core.Difficulties) * len(core.SizeModes)

// ScoreBoard holds exactly one Score per mode combination
type ScoreBoard struct {
	scores [entryCount]Score
}

// New returns a board with every record zeroed
func New() ScoreBoard {
	return ScoreBoard{
		scores: [entryCount]Score{
			{Difficulty: core.DifficultyEasy, Size: core.SizeAuto},
			{Difficulty: core.DifficultyHard, Size: core.SizeAuto},
			{Difficulty: core.DifficultyEasy, Size: core.SizeFixed},
			{Difficulty: core.DifficultyHard, Size: core.SizeFixed},
		},
	}
}

// Scores returns a copy of all entries in board order
func (b ScoreBoard) Scores() []Score {
	out := make([]Score, entryCount)
	copy(out, b.scores[:])
	return out
}

// Get returns the record of a mode combination
func (b ScoreBoard) Get(d core.Difficulty, m core.SizeMode) Record {
	return b.scores[b.index(d, m)].Record
}

// Update stores a finished game: last becomes final, best becomes max(best, final).
// An unknown mode combination is a programming error and panics.
func (b *ScoreBoard) Update(final uint64, d core.Difficulty, m core.SizeMode) {
	rec := &b.scores[b.index(d, m)].Record
	rec.Last = final
	rec.Best = max(rec.Best, rec.Last)
}

func (b ScoreBoard) index(d core.Difficulty, m core.SizeMode) int {
	for i, s := range b.scores {
		if s.Difficulty == d && s.Size == m {
			return i
		}
	}
	panic(fmt.Sprintf("score: no entry for %v/%v", d, m))
}

// Render lays the entries out on the top rows, centred horizontally
func (b ScoreBoard) Render(s render.Sink) {
	labelWidth := 0
	for _, sc := range b.scores {
		labelWidth = max(labelWidth, render.TextWidth(sc.Label()))
	}
	labelWidth++

	sample := formatRow(labelWidth, "", 0, 0)
	width, _ := s.Size()
	x := 1 + max(0, (width-render.TextWidth(sample))/2)

	for i, sc := range b.scores {
		render.PutSpans(s, x, i+1,
			render.Span{Text: fmt.Sprintf("%-*s", labelWidth, sc.Label()), Color: render.ColorRed},
			render.Span{Text: ": [", Color: render.ColorDefault},
			render.Span{Text: constants.LabelLast, Color: render.ColorYellow},
			render.Span{Text: fmt.Sprintf(": %*d | ", constants.ScoreDigits, sc.Record.Last), Color: render.ColorDefault},
			render.Span{Text: constants.LabelBest, Color: render.ColorYellow},
			render.Span{Text: fmt.Sprintf(": %*d]", constants.ScoreDigits, sc.Record.Best), Color: render.ColorDefault},
		)
	}
}

// formatRow renders a row without color, used to measure the board width
func formatRow(labelWidth int, label string, last, best uint64) string {
	return fmt.Sprintf("%-*s: [%s: %*d | %s: %*d]",
		labelWidth, label,
		constants.LabelLast, constants.ScoreDigits, last,
		constants.LabelBest, constants.ScoreDigits, best)
}
