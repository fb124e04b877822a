package components

import (
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/render"
)

// Snake is an ordered body, head first, moving one cell per tick on a toroidal field.
// Heading changes are decided by the game loop; the snake only applies Dir.
type Snake struct {
	Body  []core.Point
	Dir   core.Direction
	Frame render.Frame
}

// NewSnake copies body into a new snake. Body must hold at least one segment.
func NewSnake(body []core.Point, dir core.Direction, frame render.Frame) *Snake {
	if len(body) == 0 {
		panic("components: snake needs at least one segment")
	}
	return &Snake{
		Body:  append([]core.Point(nil), body...),
		Dir:   dir,
		Frame: frame,
	}
}

// NewInitialSnake returns the snake every game starts with
func NewInitialSnake(frame render.Frame) *Snake {
	body := make([]core.Point, len(constants.InitialSnakeBody))
	for i, p := range constants.InitialSnakeBody {
		body[i] = core.Point{X: p[0], Y: p[1]}
	}
	return NewSnake(body, core.East, frame)
}

// Head returns the first segment
func (s *Snake) Head() core.Point {
	return s.Body[0]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.Body)
}

// Move advances the head one cell along Dir and drops the tail.
// A coordinate below 1 wraps to the field maximum, one above the maximum wraps to 1.
func (s *Snake) Move() {
	field := s.Frame.Field()
	head := s.Head().Add(s.Dir)

	if head.X < 1 {
		head.X = field.W
	}
	if head.X > field.W {
		head.X = 1
	}
	if head.Y < 1 {
		head.Y = field.H
	}
	if head.Y > field.H {
		head.Y = 1
	}

	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = head
}

// Grow appends n copies of the tail; they spread out as the snake keeps moving
func (s *Snake) Grow(n int) {
	tail := s.Body[len(s.Body)-1]
	for range n {
		s.Body = append(s.Body, tail)
	}
}

// BitesItself reports whether the head shares a cell with any other segment
func (s *Snake) BitesItself() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Render draws every segment relative to the snake's frame
func (s *Snake) Render(sink render.Sink) {
	glyph := string(constants.GlyphSnake)
	for _, p := range s.Body {
		x, y := s.Frame.Goto(p.X, p.Y)
		sink.Put(x, y, glyph, render.ColorGreen)
	}
}
