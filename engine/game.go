package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/components"
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
)

// App is one game: it owns the frame, both apples and the snake until Run returns
type App struct {
	sink  render.Sink
	src   input.Source
	clock Clock
	rng   core.Rand
	log   zerolog.Logger

	frame render.Frame
	low   *components.Apple
	high  *components.Apple
	snake *components.Snake

	speed    uint64
	score    uint64
	gameOver bool
	quit     bool // pending until confirmed or declined
	easy     bool
	fixed    bool
}

// NewApp sets up a fresh game sized to the terminal or to the fixed board
func NewApp(opts Options, env Env) *App {
	a := &App{
		sink:  env.Sink,
		src:   env.Source,
		clock: env.Clock,
		rng:   env.Rand,
		log:   env.Log,
		speed: constants.InitialSpeed,
		score: constants.InitialScore,
		easy:  opts.Difficulty == core.DifficultyEasy,
		fixed: opts.Size == core.SizeFixed,
	}

	a.frame = a.targetFrame()
	a.low = components.NewTierApple(components.TierLow, a.frame, a.rng)
	a.high = components.NewTierApple(components.TierHigh, a.frame, a.rng)
	a.snake = components.NewInitialSnake(a.frame)
	return a
}

// Score returns the points collected so far
func (a *App) Score() uint64 { return a.score }

// Speed returns the current ticks per second before vertical slowdown
func (a *App) Speed() uint64 { return a.speed }

// GameOver reports whether the snake has bitten itself
func (a *App) GameOver() bool { return a.gameOver }

// Frame returns the current playing frame
func (a *App) Frame() render.Frame { return a.frame }

// Run plays until the snake bites itself or a quit is confirmed, and returns the final score
func (a *App) Run() uint64 {
	a.log.Info().Bool("easy", a.easy).Bool("fixed", a.fixed).Msg("game started")
	a.sink.SetCursorVisible(false)

	before := a.clock.Now()
	for {
		a.checkResize()

		now := a.clock.Now()
		if wait := a.waitNextTurn(now, before); wait > 0 {
			a.clock.Sleep(wait)
			continue
		}
		before = now

		a.step()

		if a.quit {
			if a.confirmQuit() {
				a.log.Info().Uint64("score", a.score).Msg("game quit")
				break
			}
			a.quit = false
		}

		if a.gameOver {
			a.showGameOver()
			a.src.WaitByte()
			a.log.Info().Uint64("score", a.score).Msg("game over")
			break
		}
	}

	return a.score
}

// step runs one accepted tick: input, turn, move, collisions, render
func (a *App) step() {
	a.react(input.ReadCommand(a.src))
	a.snake.Move()
	a.checkCollision()
	a.render()
}

// targetFrame computes the frame the board should occupy right now
func (a *App) targetFrame() render.Frame {
	w, h := constants.FixedScreenWidth, constants.FixedScreenHeight
	if !a.fixed {
		w, h = a.sink.Size()
	}
	return render.NewFrame(
		core.Point{X: constants.FrameOriginX, Y: constants.FrameOriginY},
		render.Size{W: w, H: h - constants.InfoPanelHeight},
	)
}

// checkResize rebuilds the frame after a terminal resize. Apples are re-placed;
// snake coordinates are kept as they are and only its frame changes.
func (a *App) checkResize() {
	if a.fixed {
		return
	}
	frame := a.targetFrame()
	if frame == a.frame {
		return
	}

	a.log.Debug().
		Int("width", frame.Size.W).
		Int("height", frame.Size.H).
		Msg("frame resized")

	a.frame = frame
	a.low.Relocate(frame, a.rng)
	a.high.Relocate(frame, a.rng)
	a.snake.Frame = frame
}

// tickInterval is the time between accepted ticks at the current speed and heading
func (a *App) tickInterval() time.Duration {
	speed := a.speed
	if a.snake.Dir.IsVertical() {
		speed = uint64(float64(speed) / constants.VerticalSpeedDivisor)
	}
	speed = max(speed, constants.MinEffectiveSpeed)
	return time.Duration(constants.MillisPerSecond/speed) * time.Millisecond
}

// waitNextTurn returns how long to sleep before the next tick may run, zero if it may run now
func (a *App) waitNextTurn(now, before time.Time) time.Duration {
	elapsed := now.Sub(before)
	interval := a.tickInterval()
	if elapsed < interval {
		return interval - elapsed
	}
	return 0
}

// react applies a command. Quit only raises the pending flag; easy mode refuses 180 degree turns.
func (a *App) react(cmd input.Command) {
	if cmd == input.CommandQuit {
		a.log.Debug().Msg("quit requested")
		a.quit = true
		return
	}

	dir, ok := cmd.Direction()
	if !ok {
		return
	}
	if a.easy && dir.IsReverseOf(a.snake.Dir) {
		return
	}
	a.snake.Dir = dir
}

// checkCollision evaluates apples and self-collision against the new head independently
func (a *App) checkCollision() {
	head := a.snake.Head()

	for _, apple := range [...]*components.Apple{a.low, a.high} {
		if head != apple.Pos {
			continue
		}
		a.snake.Grow(int(apple.Points))
		a.speed += apple.IncSpeed
		a.score += apple.Points
		apple.Respawn(a.rng)

		a.log.Debug().
			Stringer("tier", apple.Tier).
			Uint64("score", a.score).
			Uint64("speed", a.speed).
			Msg("apple eaten")
	}

	if a.snake.BitesItself() {
		a.gameOver = true
	}
}

// render redraws the whole board in one pass
func (a *App) render() {
	a.sink.Clear()
	a.frame.Render(a.sink)
	a.low.Render(a.sink)
	a.high.Render(a.sink)
	a.snake.Render(a.sink)
	render.InfoPanel{Score: a.score, Speed: a.speed, Frame: a.frame}.Render(a.sink)
	a.sink.Flush()
}

// confirmQuit shows the quit dialog and blocks for one key; y or Y confirms
func (a *App) confirmQuit() bool {
	render.CenteredPanel{Lines: constants.QuitScreen, Frame: a.frame}.Render(a.sink)
	a.sink.Flush()
	return input.IsConfirm(a.src.WaitByte())
}

func (a *App) showGameOver() {
	render.CenteredPanel{Lines: constants.GameOverScreen, Frame: a.frame}.Render(a.sink)
	a.sink.Flush()
}
