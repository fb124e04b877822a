package engine

import (
	"github.com/lixenwraith/term-snake/menu"
	"github.com/lixenwraith/term-snake/score"
)

// statusSaveFailed prefixes the menu status line after a failed save
const statusSaveFailed = "Scores not saved: "

// Session drives menu and games until the player quits from the menu
type Session struct {
	env   Env
	store score.Store
	board score.ScoreBoard

	status string
	games  int
}

// NewSession creates a session persisting through store
func NewSession(env Env, store score.Store) *Session {
	return &Session{env: env, store: store}
}

// Board returns the score board as last updated
func (s *Session) Board() score.ScoreBoard { return s.board }

// Games returns how many games were played
func (s *Session) Games() int { return s.games }

// Run loads the board then loops menu, game, save. It returns when the menu selects quit.
func (s *Session) Run() {
	s.board = s.store.Load()

	for {
		action := menu.New(s.env.Sink, s.env.Source, s.board, s.status).Run()
		if action.Kind == menu.ActionQuit {
			s.env.Log.Info().Int("games", s.games).Msg("session ended")
			return
		}

		s.env.Log.Info().
			Stringer("difficulty", action.Difficulty).
			Stringer("size", action.Size).
			Msg("game selected")

		app := NewApp(Options{Difficulty: action.Difficulty, Size: action.Size}, s.env)
		final := app.Run()
		s.games++

		s.board.Update(final, action.Difficulty, action.Size)
		s.status = ""
		if err := s.store.Save(s.board); err != nil {
			s.env.Log.Error().Err(err).Msg("saving scores failed")
			s.status = statusSaveFailed + err.Error()
		}
	}
}
