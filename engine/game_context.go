package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
)

// Env bundles the external capabilities a game and a session run against
type Env struct {
	Sink   render.Sink
	Source input.Source
	Clock  Clock
	Rand   core.Rand
	Log    zerolog.Logger
}

// Options fixes the rules of one game; they never change while it runs
type Options struct {
	Difficulty core.Difficulty
	Size       core.SizeMode
}
