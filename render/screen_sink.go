package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ScreenSink adapts a tcell.Screen to Sink, translating 1-based coordinates to tcell's 0-based cells
type ScreenSink struct {
	screen tcell.Screen
}

// NewScreenSink wraps an initialized screen
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen}
}

// Screen returns the wrapped screen
func (s *ScreenSink) Screen() tcell.Screen {
	return s.screen
}

// Put writes text cell by cell. Cells outside the screen are dropped by tcell.
func (s *ScreenSink) Put(x, y int, text string, fg Color) {
	style := tcell.StyleDefault.Foreground(fg.Tcell())
	col, row := x-1, y-1
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col += max(1, runewidth.RuneWidth(r))
	}
}

func (s *ScreenSink) Clear() {
	s.screen.Clear()
}

func (s *ScreenSink) SetCursorVisible(visible bool) {
	if visible {
		s.screen.ShowCursor(0, 0)
		return
	}
	s.screen.HideCursor()
}

func (s *ScreenSink) Flush() {
	s.screen.Show()
}

func (s *ScreenSink) Size() (int, int) {
	return s.screen.Size()
}
