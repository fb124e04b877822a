package core

// Point is a 1-based cell position on a frame's interior field
type Point struct {
	X, Y int
}

// Add returns the point one step along d, without wraparound
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit step on the grid. Rows grow downward, so North has DY = -1
type Direction struct {
	DX, DY int
}

var (
	North = Direction{DX: 0, DY: -1}
	South = Direction{DX: 0, DY: 1}
	East  = Direction{DX: 1, DY: 0}
	West  = Direction{DX: -1, DY: 0}
)

// Directions lists the four headings in N, S, E, W order
var Directions = [...]Direction{North, South, East, West}

// Reverse returns the opposite heading
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsReverseOf reports whether d negates o on both axes
func (d Direction) IsReverseOf(o Direction) bool {
	return d.DX == -o.DX && d.DY == -o.DY
}

// IsVertical reports whether the heading changes rows
func (d Direction) IsVertical() bool {
	return d.DY != 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return "?"
}
