package components

import (
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/render"
)

// AppleTier distinguishes the two collectible kinds
type AppleTier uint8

const (
	TierLow AppleTier = iota
	TierHigh
)

func (t AppleTier) String() string {
	if t == TierHigh {
		return "high"
	}
	return "low"
}

// appleLooks holds glyph and color per tier, indexed by AppleTier
var appleLooks = [...]struct {
	glyph rune
	color render.Color
}{
	TierLow:  {constants.GlyphLowApple, render.ColorRed},
	TierHigh: {constants.GlyphHighApple, render.ColorYellow},
}

// Apple is a collectible placed on a frame's field
type Apple struct {
	Pos      core.Point
	Points   uint64 // score and growth awarded
	IncSpeed uint64 // ticks-per-second increment awarded
	Tier     AppleTier
	Frame    render.Frame
}

// NewApple places an apple at a random interior point of frame.
// Points and incSpeed are taken as given; NewTierApple supplies the canonical pair.
func NewApple(points, incSpeed uint64, tier AppleTier, frame render.Frame, rng core.Rand) *Apple {
	return &Apple{
		Pos:      frame.RandomPoint(rng),
		Points:   points,
		IncSpeed: incSpeed,
		Tier:     tier,
		Frame:    frame,
	}
}

// NewTierApple places an apple with the fixed points and speed of its tier
func NewTierApple(tier AppleTier, frame render.Frame, rng core.Rand) *Apple {
	if tier == TierHigh {
		return NewApple(constants.HighTierPoints, constants.HighTierSpeed, TierHigh, frame, rng)
	}
	return NewApple(constants.LowTierPoints, constants.LowTierSpeed, TierLow, frame, rng)
}

// Respawn moves the apple to a new random point of its frame. The snake body is not avoided.
func (a *Apple) Respawn(rng core.Rand) {
	a.Pos = a.Frame.RandomPoint(rng)
}

// Relocate adopts a new frame and respawns inside it
func (a *Apple) Relocate(frame render.Frame, rng core.Rand) {
	a.Frame = frame
	a.Respawn(rng)
}

// Render draws the tier glyph at the apple's frame-relative position
func (a *Apple) Render(s render.Sink) {
	look := appleLooks[a.Tier]
	x, y := a.Frame.Goto(a.Pos.X, a.Pos.Y)
	s.Put(x, y, string(look.glyph), look.color)
}
