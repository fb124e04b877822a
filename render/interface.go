package render

// Sink is the terminal capability renderables draw into.
// Coordinates are absolute and 1-based; column 1, row 1 is the top-left cell.
type Sink interface {
	// Put writes text starting at column x, row y, advancing by each rune's display width
	Put(x, y int, text string, fg Color)

	// Clear blanks the whole screen
	Clear()

	// SetCursorVisible shows or hides the terminal cursor
	SetCursorVisible(visible bool)

	// Flush pushes all pending writes to the terminal
	Flush()

	// Size returns the current terminal dimensions
	Size() (width, height int)
}

// Renderable is anything that can draw itself into a Sink
type Renderable interface {
	Render(s Sink)
}

// Span is a run of text drawn in one color
type Span struct {
	Text  string
	Color Color
}

// PutSpans writes spans left to right starting at (x, y) and returns the column after the last one
func PutSpans(s Sink, x, y int, spans ...Span) int {
	for _, sp := range spans {
		s.Put(x, y, sp.Text, sp.Color)
		x += TextWidth(sp.Text)
	}
	return x
}
