package score

import (
	"strings"
	"testing"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/render"
)

// TestNewBoardZeroed verifies every combination exists and starts at zero
func TestNewBoardZeroed(t *testing.T) {
	b := New()
	if len(b.Scores()) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(b.Scores()))
	}
	for _, d := range core.Difficulties {
		for _, m := range core.SizeModes {
			if rec := b.Get(d, m); rec != (Record{}) {
				t.Errorf("%v/%v: expected zero record, got %+v", d, m, rec)
			}
		}
	}
}

// TestUpdateTracksLastAndBest verifies last always moves and best only rises
func TestUpdateTracksLastAndBest(t *testing.T) {
	b := New()

	b.Update(7, core.DifficultyHard, core.SizeFixed)
	if rec := b.Get(core.DifficultyHard, core.SizeFixed); rec.Last != 7 || rec.Best != 7 {
		t.Errorf("Expected 7/7, got %+v", rec)
	}

	b.Update(3, core.DifficultyHard, core.SizeFixed)
	if rec := b.Get(core.DifficultyHard, core.SizeFixed); rec.Last != 3 || rec.Best != 7 {
		t.Errorf("Expected 3/7, got %+v", rec)
	}

	// Other entries untouched
	if rec := b.Get(core.DifficultyEasy, core.SizeFixed); rec != (Record{}) {
		t.Errorf("Expected untouched entry, got %+v", rec)
	}
}

// TestUpdateIdempotent verifies a repeated update leaves best unchanged
func TestUpdateIdempotent(t *testing.T) {
	b := New()
	b.Update(12, core.DifficultyEasy, core.SizeAuto)
	first := b.Get(core.DifficultyEasy, core.SizeAuto)
	b.Update(12, core.DifficultyEasy, core.SizeAuto)
	second := b.Get(core.DifficultyEasy, core.SizeAuto)

	if first != second {
		t.Errorf("Expected idempotent update, got %+v then %+v", first, second)
	}
}

// TestUpdateUnknownModePanics verifies a missing combination is treated as a programming error
func TestUpdateUnknownModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown mode")
		}
	}()
	b := New()
	b.Update(1, core.Difficulty(9), core.SizeAuto)
}

// TestLabels verifies board labels
func TestLabels(t *testing.T) {
	tests := []struct {
		s    Score
		want string
	}{
		{Score{Difficulty: core.DifficultyEasy, Size: core.SizeAuto}, "Easy Full"},
		{Score{Difficulty: core.DifficultyHard, Size: core.SizeFixed}, "Hard 80x25"},
	}
	for _, tt := range tests {
		if got := tt.s.Label(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

// TestBoardRender verifies four centred rows at the top of the screen
func TestBoardRender(t *testing.T) {
	sink, screen := render.NewSimulationSink(80, 10)
	defer screen.Fini()

	b := New()
	b.Update(42, core.DifficultyHard, core.SizeAuto)
	b.Render(sink)

	row := render.RowText(screen, 2)
	if !strings.Contains(row, "Hard Full  : [last:   42 | best:   42]") {
		t.Errorf("Unexpected row 2: %q", row)
	}

	lead := len(row) - len(strings.TrimLeft(row, " "))
	trail := len(row) - len(strings.TrimRight(row, " "))
	if diff := lead - trail; diff < -1 || diff > 1 {
		t.Errorf("Expected centred row, leading %d trailing %d", lead, trail)
	}

	if got := strings.TrimSpace(render.RowText(screen, 5)); got != "" {
		t.Errorf("Expected only 4 rows, row 5 is %q", got)
	}
}
