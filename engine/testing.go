package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
)

// testEpoch is the start time of every test clock
var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestEnv is an Env over a simulation screen, a scripted key queue and a mock clock
type TestEnv struct {
	Env
	Screen tcell.SimulationScreen
	Keys   *input.Queue
	Clock  *MockClock
}

// NewTestEnv creates an Env for tests. The screen is width x height, keys are queued
// in order, and the random source is seeded so placements repeat between runs.
func NewTestEnv(width, height int, keys string) *TestEnv {
	sink, screen := render.NewSimulationSink(width, height)
	queue := input.NewQueue()
	queue.PushString(keys)
	clock := NewMockClock(testEpoch)

	return &TestEnv{
		Env: Env{
			Sink:   sink,
			Source: queue,
			Clock:  clock,
			Rand:   core.NewSeededRand(1),
			Log:    zerolog.Nop(),
		},
		Screen: screen,
		Keys:   queue,
		Clock:  clock,
	}
}
