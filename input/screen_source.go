package input

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

// ScreenSource reads tcell key events and re-encodes them as raw terminal bytes.
// The poller runs on its own goroutine; consumers only ever see the byte channel.
type ScreenSource struct {
	screen tcell.Screen
	bytes  chan byte
}

// NewScreenSource creates a source over an initialized screen. Call Start to begin polling.
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	return &ScreenSource{
		screen: screen,
		bytes:  make(chan byte, constants.InputQueueSize),
	}
}

// Start launches the event poller. It exits when the screen is finalized.
func (s *ScreenSource) Start() {
	core.Go(s.poll)
}

func (s *ScreenSource) poll() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			for _, b := range KeyBytes(ev.Key(), ev.Rune()) {
				s.bytes <- b
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func (s *ScreenSource) PollByte() (byte, bool) {
	select {
	case b := <-s.bytes:
		return b, true
	default:
		return 0, false
	}
}

func (s *ScreenSource) WaitByte() byte {
	return <-s.bytes
}

// KeyBytes encodes a tcell key as the bytes a raw-mode terminal sends for it.
// Keys the game never reads are dropped.
func KeyBytes(key tcell.Key, r rune) []byte {
	switch key {
	case tcell.KeyUp:
		return []byte{constants.KeyEscape, constants.KeyCSI, constants.KeyArrowUp}
	case tcell.KeyDown:
		return []byte{constants.KeyEscape, constants.KeyCSI, constants.KeyArrowDn}
	case tcell.KeyRight:
		return []byte{constants.KeyEscape, constants.KeyCSI, constants.KeyArrowRt}
	case tcell.KeyLeft:
		return []byte{constants.KeyEscape, constants.KeyCSI, constants.KeyArrowLt}
	case tcell.KeyCtrlC:
		return []byte{constants.KeyCtrlC}
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyRune:
		if r < utf8.RuneSelf {
			return []byte{byte(r)}
		}
		return utf8.AppendRune(nil, r)
	}
	return nil
}
