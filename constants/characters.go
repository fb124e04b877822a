package constants

// Key bytes as delivered by the input source
const (
	KeyEscape  byte = 0x1b
	KeyCSI     byte = '['
	KeyArrowUp byte = 'A'
	KeyArrowDn byte = 'B'
	KeyArrowRt byte = 'C'
	KeyArrowLt byte = 'D'
	KeyCtrlC   byte = 0x03
)

// Game glyphs
const (
	GlyphLowApple  = '❤'
	GlyphHighApple = '❦'
	GlyphSnake     = '✿'
)
