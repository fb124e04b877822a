package render

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]string{
	LineSingle:  {"┌", "─", "┐", "│", "└", "┘"},
	LineDouble:  {"╔", "═", "╗", "║", "╚", "╝"},
	LineRounded: {"╭", "─", "╮", "│", "╰", "╯"},
	LineHeavy:   {"┏", "━", "┓", "┃", "┗", "┛"},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws a w x h border whose top-left corner is at absolute (x, y)
func Box(s Sink, x, y, w, h int, line LineType, fg Color) {
	if w < 2 || h < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	// Corners
	s.Put(x, y, chars[boxTL], fg)
	s.Put(x+w-1, y, chars[boxTR], fg)
	s.Put(x, y+h-1, chars[boxBL], fg)
	s.Put(x+w-1, y+h-1, chars[boxBR], fg)

	// Horizontal edges
	for i := 1; i < w-1; i++ {
		s.Put(x+i, y, chars[boxH], fg)
		s.Put(x+i, y+h-1, chars[boxH], fg)
	}

	// Vertical edges
	for j := 1; j < h-1; j++ {
		s.Put(x, y+j, chars[boxV], fg)
		s.Put(x+w-1, y+j, chars[boxV], fg)
	}
}
