package input

import (
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

// Command is one decoded in-game action
type Command uint8

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
)

var commandNames = [...]string{
	CommandNone:  "none",
	CommandUp:    "up",
	CommandDown:  "down",
	CommandLeft:  "left",
	CommandRight: "right",
	CommandQuit:  "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "invalid"
}

// Direction returns the screen heading of a directional command
func (c Command) Direction() (core.Direction, bool) {
	switch c {
	case CommandUp:
		return core.North, true
	case CommandDown:
		return core.South, true
	case CommandLeft:
		return core.West, true
	case CommandRight:
		return core.East, true
	}
	return core.Direction{}, false
}

// ReadCommand consumes at most one command from src without blocking.
// An ESC byte consumes the two bytes after it; the second selects the arrow.
func ReadCommand(src Source) Command {
	b, ok := src.PollByte()
	if !ok {
		return CommandNone
	}

	switch b {
	case constants.KeyEscape:
		if _, ok := src.PollByte(); !ok {
			return CommandNone
		}
		code, ok := src.PollByte()
		if !ok {
			return CommandNone
		}
		switch code {
		case constants.KeyArrowUp:
			return CommandUp
		case constants.KeyArrowDn:
			return CommandDown
		case constants.KeyArrowRt:
			return CommandRight
		case constants.KeyArrowLt:
			return CommandLeft
		}
		return CommandNone

	case 'w', 'W':
		return CommandUp
	case 's', 'S':
		return CommandDown
	case 'a', 'A':
		return CommandLeft
	case 'd', 'D':
		return CommandRight
	case 'q', 'Q', constants.KeyCtrlC:
		return CommandQuit
	}
	return CommandNone
}

// IsConfirm reports whether a keypress answers yes to a prompt
func IsConfirm(b byte) bool {
	return b == 'y' || b == 'Y'
}
