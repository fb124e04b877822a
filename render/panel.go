package render

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-snake/constants"
)

// TextWidth returns the display width of text in cells
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// CenteredPanel draws fixed lines centred inside a frame
type CenteredPanel struct {
	Lines []string
	Frame Frame
}

// Render draws each line centred horizontally, the block centred vertically
func (p CenteredPanel) Render(s Sink) {
	width := 0
	for _, line := range p.Lines {
		width = max(width, TextWidth(line))
	}

	row := p.Frame.Pos.Y + max(0, (p.Frame.Size.H-len(p.Lines))/2)
	col := p.Frame.Pos.X + max(0, (p.Frame.Size.W-width)/2)

	for _, line := range p.Lines {
		s.Put(col, row, line, ColorDefault)
		row++
	}
}

// InfoPanel shows score and speed in a box under the frame
type InfoPanel struct {
	Score uint64
	Speed uint64
	Frame Frame
}

// Render draws the panel immediately below the frame border, as wide as the frame
func (p InfoPanel) Render(s Sink) {
	x := p.Frame.Pos.X
	y := p.Frame.Bottom()
	Box(s, x, y, p.Frame.Size.W, constants.InfoPanelHeight, LineRounded, ColorDefault)

	PutSpans(s, x+2, y+1,
		Span{Text: constants.LabelScore, Color: ColorYellow},
		Span{Text: ": " + strconv.FormatUint(p.Score, 10) + "  ", Color: ColorDefault},
		Span{Text: constants.LabelSpeed, Color: ColorYellow},
		Span{Text: ": " + strconv.FormatUint(p.Speed, 10), Color: ColorDefault},
	)
}
