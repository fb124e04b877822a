package render

import "github.com/gdamore/tcell/v2"

// Color is one of the eight basic terminal foreground colors, or the terminal default
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// tcellColors maps Color to the tcell palette, indexed by Color
var tcellColors = [...]tcell.Color{
	ColorDefault: tcell.ColorReset,
	ColorBlack:   tcell.ColorBlack,
	ColorRed:     tcell.ColorMaroon,
	ColorGreen:   tcell.ColorGreen,
	ColorYellow:  tcell.ColorOlive,
	ColorBlue:    tcell.ColorNavy,
	ColorMagenta: tcell.ColorPurple,
	ColorCyan:    tcell.ColorTeal,
	ColorWhite:   tcell.ColorSilver,
}

// Tcell returns the matching tcell palette entry
func (c Color) Tcell() tcell.Color {
	if int(c) >= len(tcellColors) {
		return tcell.ColorReset
	}
	return tcellColors[c]
}
