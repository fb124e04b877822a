package render

import (
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

// Size is a width/height pair in cells
type Size struct {
	W, H int
}

// Frame is a bordered rectangle with its own interior coordinate system.
// Interior coordinates are 1-based relative to the frame's origin.
type Frame struct {
	Pos  core.Point
	Size Size
}

// NewFrame builds a frame, growing size until the interior field is at least one cell
func NewFrame(pos core.Point, size Size) Frame {
	pos.X = max(pos.X, 1)
	pos.Y = max(pos.Y, 1)
	size.W = max(size.W, constants.MinFrameSize, pos.X+2)
	size.H = max(size.H, constants.MinFrameSize, pos.Y+2)
	return Frame{Pos: pos, Size: size}
}

// Field returns the interior extent available for game objects.
// Call it again after a resize; it is derived, never cached.
func (f Frame) Field() Size {
	return Size{
		W: f.Size.W - f.Pos.X - 1,
		H: f.Size.H - f.Pos.Y - 1,
	}
}

// RandomPoint returns a uniformly random interior point
func (f Frame) RandomPoint(r core.Rand) core.Point {
	field := f.Field()
	return core.Point{
		X: r.IntN(field.W) + 1,
		Y: r.IntN(field.H) + 1,
	}
}

// Contains reports whether p lies on the interior field
func (f Frame) Contains(p core.Point) bool {
	field := f.Field()
	return p.X >= 1 && p.X <= field.W && p.Y >= 1 && p.Y <= field.H
}

// Goto maps interior coordinates to absolute terminal coordinates
func (f Frame) Goto(x, y int) (int, int) {
	return f.Pos.X + x, f.Pos.Y + y
}

// Bottom returns the first absolute row below the border
func (f Frame) Bottom() int {
	return f.Pos.Y + f.Size.H
}

// Render draws the border using the frame's own position and size
func (f Frame) Render(s Sink) {
	Box(s, f.Pos.X, f.Pos.Y, f.Size.W, f.Size.H, LineRounded, ColorDefault)
}
