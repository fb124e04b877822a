package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/term-snake/components"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
)

// newTestApp builds an auto-sized game whose frame interior is 10x10, apples parked in the far corner
func newTestApp(t *testing.T, d core.Difficulty, keys string) (*App, *TestEnv) {
	t.Helper()
	return newSizedTestApp(t, d, keys, 12, 15)
}

// newWideTestApp leaves room for the 34 column dialogs
func newWideTestApp(t *testing.T, d core.Difficulty, keys string) (*App, *TestEnv) {
	t.Helper()
	return newSizedTestApp(t, d, keys, 40, 15)
}

func newSizedTestApp(t *testing.T, d core.Difficulty, keys string, width, height int) (*App, *TestEnv) {
	t.Helper()
	te := NewTestEnv(width, height, keys)
	app := NewApp(Options{Difficulty: d, Size: core.SizeAuto}, te.Env)

	want := render.Size{W: width - 2, H: height - 5}
	if field := app.Frame().Field(); field != want {
		t.Fatalf("Expected field %+v, got %+v", want, field)
	}
	app.low.Pos = core.Point{X: 10, Y: 10}
	app.high.Pos = core.Point{X: 10, Y: 9}
	return app, te
}

func assertBody(t *testing.T, s *components.Snake, want ...core.Point) {
	t.Helper()
	if len(s.Body) != len(want) {
		t.Fatalf("Expected body length %d, got %d (%v)", len(want), len(s.Body), s.Body)
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("Segment %d: expected %v, got %v", i, want[i], s.Body[i])
		}
	}
}

func TestNewAppInitialState(t *testing.T) {
	te := NewTestEnv(40, 20, "")
	app := NewApp(Options{Difficulty: core.DifficultyEasy, Size: core.SizeAuto}, te.Env)

	if app.Score() != 0 {
		t.Errorf("Expected score 0, got %d", app.Score())
	}
	if app.Speed() != 10 {
		t.Errorf("Expected speed 10, got %d", app.Speed())
	}
	if app.GameOver() {
		t.Error("Expected game not over")
	}
	if app.snake.Dir != core.East {
		t.Errorf("Expected heading East, got %v", app.snake.Dir)
	}
	assertBody(t, app.snake, core.Point{X: 3, Y: 1}, core.Point{X: 2, Y: 1}, core.Point{X: 1, Y: 1})

	wantFrame := render.Frame{Pos: core.Point{X: 1, Y: 1}, Size: render.Size{W: 40, H: 17}}
	if app.Frame() != wantFrame {
		t.Errorf("Expected frame %+v, got %+v", wantFrame, app.Frame())
	}
	for _, a := range []*components.Apple{app.low, app.high} {
		if !wantFrame.Contains(a.Pos) {
			t.Errorf("Expected %s apple inside the field, got %v", a.Tier, a.Pos)
		}
	}
}

func TestNewAppFixedSize(t *testing.T) {
	te := NewTestEnv(120, 50, "")
	app := NewApp(Options{Difficulty: core.DifficultyHard, Size: core.SizeFixed}, te.Env)

	want := render.Size{W: 80, H: 22}
	if app.Frame().Size != want {
		t.Errorf("Expected fixed frame %+v, got %+v", want, app.Frame().Size)
	}
}

func TestStepMovesWithoutApple(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyEasy, "")

	app.step()

	assertBody(t, app.snake, core.Point{X: 4, Y: 1}, core.Point{X: 3, Y: 1}, core.Point{X: 2, Y: 1})
	if app.Score() != 0 || app.Speed() != 10 {
		t.Errorf("Expected score 0 and speed 10, got %d and %d", app.Score(), app.Speed())
	}
	if app.GameOver() {
		t.Error("Expected game not over")
	}
}

func TestStepEatsLowApple(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyEasy, "")
	app.low.Pos = core.Point{X: 4, Y: 1}

	app.step()

	if app.snake.Head() != (core.Point{X: 4, Y: 1}) {
		t.Errorf("Expected head (4,1), got %v", app.snake.Head())
	}
	if app.snake.Len() != 4 {
		t.Errorf("Expected length 4, got %d", app.snake.Len())
	}
	if app.Score() != 1 {
		t.Errorf("Expected score 1, got %d", app.Score())
	}
	if app.Speed() != 11 {
		t.Errorf("Expected speed 11, got %d", app.Speed())
	}
	if !app.Frame().Contains(app.low.Pos) {
		t.Errorf("Expected respawned apple inside the field, got %v", app.low.Pos)
	}
	if app.high.Pos != (core.Point{X: 10, Y: 9}) {
		t.Errorf("Expected high apple untouched, got %v", app.high.Pos)
	}
}

func TestStepEatsHighApple(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyHard, "")
	app.high.Pos = core.Point{X: 4, Y: 1}

	app.step()

	if app.snake.Len() != 5 {
		t.Errorf("Expected length 5, got %d", app.snake.Len())
	}
	if app.Score() != 2 || app.Speed() != 12 {
		t.Errorf("Expected score 2 and speed 12, got %d and %d", app.Score(), app.Speed())
	}
	if app.low.Pos != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Expected low apple untouched, got %v", app.low.Pos)
	}
}

func TestEasyModeRejectsReverse(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyEasy, "a")

	app.step()

	if app.snake.Dir != core.East {
		t.Errorf("Expected heading to stay East, got %v", app.snake.Dir)
	}
	if app.GameOver() {
		t.Error("Expected reverse turn to be ignored in easy mode")
	}
	if app.snake.Head() != (core.Point{X: 4, Y: 1}) {
		t.Errorf("Expected head (4,1), got %v", app.snake.Head())
	}
}

func TestHardModeAcceptsReverse(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyHard, "a")

	app.step()

	if app.snake.Dir != core.West {
		t.Errorf("Expected heading West, got %v", app.snake.Dir)
	}
	if !app.GameOver() {
		t.Error("Expected reversing into the body to end the game")
	}
}

func TestTurnRestriction(t *testing.T) {
	keys := map[byte]core.Direction{'w': core.North, 's': core.South, 'a': core.West, 'd': core.East}

	for _, d := range []core.Difficulty{core.DifficultyEasy, core.DifficultyHard} {
		for _, heading := range core.Directions {
			for key, target := range keys {
				app, _ := newTestApp(t, d, "")
				app.snake.Dir = heading
				app.react(input.ReadCommand(input.NewQueue(key)))

				want := target
				if d == core.DifficultyEasy && target.IsReverseOf(heading) {
					want = heading
				}
				if app.snake.Dir != want {
					t.Errorf("%s heading %v, key %q: expected %v, got %v", d, heading, key, want, app.snake.Dir)
				}
			}
		}
	}
}

func TestArrowKeysSteer(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyEasy, "\x1b[B")

	app.step()

	if app.snake.Dir != core.South {
		t.Errorf("Expected heading South, got %v", app.snake.Dir)
	}
	if app.snake.Head() != (core.Point{X: 3, Y: 2}) {
		t.Errorf("Expected head (3,2), got %v", app.snake.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyEasy, "")
	app.snake = components.NewSnake([]core.Point{
		{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}, {X: 4, Y: 4},
	}, core.West, app.Frame())

	app.step()

	if app.snake.Head() != (core.Point{X: 4, Y: 5}) {
		t.Errorf("Expected head (4,5), got %v", app.snake.Head())
	}
	if !app.GameOver() {
		t.Error("Expected self-collision to end the game")
	}
}

func TestAppleAndCollisionSameTick(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyEasy, "")
	app.snake = components.NewSnake([]core.Point{
		{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}, {X: 4, Y: 4},
	}, core.West, app.Frame())
	app.low.Pos = core.Point{X: 4, Y: 5}

	app.step()

	if app.Score() != 1 {
		t.Errorf("Expected apple to be eaten on the colliding tick, got score %d", app.Score())
	}
	if !app.GameOver() {
		t.Error("Expected game over")
	}
}

func TestTickInterval(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyEasy, "")

	tests := []struct {
		speed uint64
		dir   core.Direction
		want  time.Duration
	}{
		{10, core.East, 100 * time.Millisecond},
		{10, core.West, 100 * time.Millisecond},
		{10, core.North, 166 * time.Millisecond},
		{10, core.South, 166 * time.Millisecond},
		{16, core.South, 100 * time.Millisecond},
		{1, core.North, 1000 * time.Millisecond},
		{1, core.East, 1000 * time.Millisecond},
	}

	for _, tt := range tests {
		app.speed = tt.speed
		app.snake.Dir = tt.dir
		if got := app.tickInterval(); got != tt.want {
			t.Errorf("Speed %d heading %v: expected %v, got %v", tt.speed, tt.dir, tt.want, got)
		}
	}
}

func TestWaitNextTurn(t *testing.T) {
	app, _ := newTestApp(t, core.DifficultyEasy, "")
	before := testEpoch

	if got := app.waitNextTurn(before.Add(30*time.Millisecond), before); got != 70*time.Millisecond {
		t.Errorf("Expected 70ms wait, got %v", got)
	}
	if got := app.waitNextTurn(before.Add(100*time.Millisecond), before); got != 0 {
		t.Errorf("Expected no wait at the interval, got %v", got)
	}
	if got := app.waitNextTurn(before.Add(time.Second), before); got != 0 {
		t.Errorf("Expected no wait past the interval, got %v", got)
	}
}

func TestRunQuitConfirmed(t *testing.T) {
	app, te := newTestApp(t, core.DifficultyEasy, "qy")

	final := app.Run()

	if final != 0 {
		t.Errorf("Expected final score 0, got %d", final)
	}
	if app.snake.Head() != (core.Point{X: 4, Y: 1}) {
		t.Errorf("Expected one tick before quitting, head at %v", app.snake.Head())
	}
	slept, sleeps := te.Clock.Slept()
	if slept != 100*time.Millisecond || sleeps != 1 {
		t.Errorf("Expected a single 100ms throttle sleep, got %v over %d calls", slept, sleeps)
	}
	if te.Keys.Len() != 0 {
		t.Errorf("Expected all keys consumed, %d left", te.Keys.Len())
	}
}

func TestRunQuitDeclined(t *testing.T) {
	app, te := newTestApp(t, core.DifficultyEasy, "qnqy")

	app.Run()

	if app.snake.Head() != (core.Point{X: 5, Y: 1}) {
		t.Errorf("Expected play to resume for one more tick, head at %v", app.snake.Head())
	}
	if app.GameOver() {
		t.Error("Expected game not over")
	}
	slept, sleeps := te.Clock.Slept()
	if slept != 200*time.Millisecond || sleeps != 2 {
		t.Errorf("Expected two 100ms throttle sleeps, got %v over %d calls", slept, sleeps)
	}
}

func TestRunQuitDialogShown(t *testing.T) {
	app, te := newWideTestApp(t, core.DifficultyEasy, "q")
	te.Keys.Push('y')

	app.Run()

	if !screenContains(te, "Quit this game?") {
		t.Error("Expected the quit dialog on screen")
	}
}

func TestRunGameOver(t *testing.T) {
	app, te := newWideTestApp(t, core.DifficultyHard, "ax")

	final := app.Run()

	if !app.GameOver() {
		t.Fatal("Expected game over")
	}
	if final != 0 {
		t.Errorf("Expected final score 0, got %d", final)
	}
	if !screenContains(te, "GAME OVER") {
		t.Error("Expected the game over panel on screen")
	}
	if te.Keys.Len() != 0 {
		t.Errorf("Expected the dismiss key consumed, %d left", te.Keys.Len())
	}
}

func TestResizeAutoFollowsTerminal(t *testing.T) {
	app, te := newTestApp(t, core.DifficultyEasy, "")
	body := append([]core.Point(nil), app.snake.Body...)

	te.Screen.SetSize(30, 20)
	app.checkResize()

	want := render.Frame{Pos: core.Point{X: 1, Y: 1}, Size: render.Size{W: 30, H: 17}}
	if app.Frame() != want {
		t.Fatalf("Expected frame %+v, got %+v", want, app.Frame())
	}
	if app.snake.Frame != want || app.low.Frame != want || app.high.Frame != want {
		t.Error("Expected snake and apples to adopt the new frame")
	}
	for _, a := range []*components.Apple{app.low, app.high} {
		if !want.Contains(a.Pos) {
			t.Errorf("Expected %s apple inside the new field, got %v", a.Tier, a.Pos)
		}
	}
	for i := range body {
		if app.snake.Body[i] != body[i] {
			t.Errorf("Expected segment %d kept at %v, got %v", i, body[i], app.snake.Body[i])
		}
	}
}

func TestResizeFixedIgnoresTerminal(t *testing.T) {
	te := NewTestEnv(100, 40, "")
	app := NewApp(Options{Difficulty: core.DifficultyEasy, Size: core.SizeFixed}, te.Env)
	before := app.Frame()
	lowPos := app.low.Pos

	te.Screen.SetSize(50, 20)
	app.checkResize()

	if app.Frame() != before {
		t.Errorf("Expected fixed frame %+v, got %+v", before, app.Frame())
	}
	if app.low.Pos != lowPos {
		t.Errorf("Expected apple to stay at %v, got %v", lowPos, app.low.Pos)
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	te := NewTestEnv(30, 15, "")
	app := NewApp(Options{Difficulty: core.DifficultyEasy, Size: core.SizeAuto}, te.Env)
	app.low.Pos = core.Point{X: 5, Y: 5}
	app.high.Pos = core.Point{X: 7, Y: 7}

	app.render()

	checks := []struct {
		x, y int
		want rune
		what string
	}{
		{1, 1, '╭', "top-left corner"},
		{30, 12, '╯', "bottom-right corner"},
		{6, 6, '❤', "low apple"},
		{8, 8, '❦', "high apple"},
		{4, 2, '✿', "snake head"},
		{2, 2, '✿', "snake tail"},
	}
	for _, c := range checks {
		if got := render.RuneAt(te.Screen, c.x, c.y); got != c.want {
			t.Errorf("Expected %s %q at (%d,%d), got %q", c.what, c.want, c.x, c.y, got)
		}
	}

	if row := render.RowText(te.Screen, 14); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "Speed: 10") {
		t.Errorf("Expected info panel text on row 14, got %q", row)
	}
}

func TestScoreAndSpeedNeverDecrease(t *testing.T) {
	app, te := newTestApp(t, core.DifficultyEasy, "")
	rng := core.NewSeededRand(7)
	keys := []byte("wasdx")

	prevScore, prevSpeed := app.Score(), app.Speed()
	for tick := 0; tick < 2000 && !app.GameOver(); tick++ {
		te.Keys.Push(keys[rng.IntN(len(keys))])
		app.step()

		if app.Score() < prevScore || app.Speed() < prevSpeed {
			t.Fatalf("Tick %d: score %d->%d speed %d->%d", tick, prevScore, app.Score(), prevSpeed, app.Speed())
		}
		if app.Score()-prevScore != app.Speed()-prevSpeed {
			t.Fatalf("Tick %d: score grew by %d but speed by %d", tick, app.Score()-prevScore, app.Speed()-prevSpeed)
		}
		if want := 3 + int(app.Score()); app.snake.Len() != want {
			t.Fatalf("Tick %d: expected length %d, got %d", tick, want, app.snake.Len())
		}
		prevScore, prevSpeed = app.Score(), app.Speed()
	}
}

func screenContains(te *TestEnv, text string) bool {
	_, h := te.Screen.Size()
	for y := 1; y <= h; y++ {
		if strings.Contains(render.RowText(te.Screen, y), text) {
			return true
		}
	}
	return false
}
