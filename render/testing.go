package render

import "github.com/gdamore/tcell/v2"

// NewSimulationSink returns a sink over an initialized simulation screen of the given size.
// Used by tests across packages.
func NewSimulationSink(width, height int) (*ScreenSink, tcell.SimulationScreen) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		panic(err)
	}
	screen.SetSize(width, height)
	return NewScreenSink(screen), screen
}

// RuneAt returns the rune drawn at absolute 1-based (x, y) on a screen
func RuneAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x-1, y-1)
	return r
}

// RowText returns row y (1-based) as a string, trailing blanks included
func RowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	runes := make([]rune, 0, w)
	for x := 1; x <= w; x++ {
		r := RuneAt(screen, x, y)
		if r == 0 {
			r = ' '
		}
		runes = append(runes, r)
	}
	return string(runes)
}
