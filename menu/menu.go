// Package menu is the main menu: it shows the score board, then blocks until a key selects an action.
package menu

import (
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/score"
)

// ActionKind is the outcome class of a menu selection
type ActionKind uint8

const (
	ActionStart ActionKind = iota
	ActionQuit
)

// Action is what the player picked. Difficulty and Size are meaningful only for ActionStart.
type Action struct {
	Kind       ActionKind
	Difficulty core.Difficulty
	Size       core.SizeMode
}

// State tracks where the menu is in its single pass
type State uint8

const (
	StateShowing State = iota
	StateAwaitingKey
	StateResolved
)

// bindings maps menu keys to actions
var bindings = map[byte]Action{
	'1':                {Kind: ActionStart, Difficulty: core.DifficultyEasy, Size: core.SizeAuto},
	'2':                {Kind: ActionStart, Difficulty: core.DifficultyHard, Size: core.SizeAuto},
	'3':                {Kind: ActionStart, Difficulty: core.DifficultyEasy, Size: core.SizeFixed},
	'4':                {Kind: ActionStart, Difficulty: core.DifficultyHard, Size: core.SizeFixed},
	'q':                {Kind: ActionQuit},
	'Q':                {Kind: ActionQuit},
	constants.KeyCtrlC: {Kind: ActionQuit},
}

// Resolve maps one keypress to an action, false for keys the menu ignores
func Resolve(b byte) (Action, bool) {
	a, ok := bindings[b]
	return a, ok
}

// Menu is a single use menu screen
type Menu struct {
	sink   render.Sink
	src    input.Source
	board  score.ScoreBoard
	status string // shown on the bottom row when set

	state  State
	action Action
}

// New creates a menu over the given board. Status may be empty.
func New(sink render.Sink, src input.Source, board score.ScoreBoard, status string) *Menu {
	return &Menu{
		sink:   sink,
		src:    src,
		board:  board,
		status: status,
		state:  StateShowing,
	}
}

// State returns the current menu state
func (m *Menu) State() State {
	return m.state
}

// Run renders once and blocks until a recognized key arrives. Calling it again returns the same action.
func (m *Menu) Run() Action {
	if m.state == StateResolved {
		return m.action
	}

	m.render()
	m.state = StateAwaitingKey

	for {
		if a, ok := Resolve(m.src.WaitByte()); ok {
			m.action = a
			m.state = StateResolved
			return a
		}
	}
}

func (m *Menu) render() {
	m.sink.Clear()
	m.sink.SetCursorVisible(false)
	m.board.Render(m.sink)

	w, h := m.sink.Size()
	full := render.NewFrame(
		core.Point{X: constants.FrameOriginX, Y: constants.FrameOriginY},
		render.Size{W: w, H: h},
	)
	render.CenteredPanel{Lines: constants.MainMenuScreen, Frame: full}.Render(m.sink)

	if m.status != "" {
		m.sink.Put(constants.FrameOriginX, h, m.status, render.ColorRed)
	}
	m.sink.Flush()
}
