package constants

// Panel screens, each line drawn centred inside the current frame
var (
	GameOverScreen = []string{
		"╭────────────────────────────────╮",
		"│                                │",
		"│            GAME OVER           │",
		"│                                │",
		"╰────────────────────────────────╯",
	}

	QuitScreen = []string{
		"╭────────────────────────────────╮",
		"│                                │",
		"│      Quit this game? (y/n)     │",
		"│                                │",
		"╰────────────────────────────────╯",
	}

	MainMenuScreen = []string{
		"╭────────────────────────────────╮",
		"│            TERM SNAKE          │",
		"│                                │",
		"│   1 - Easy, fit to terminal    │",
		"│   2 - Hard, fit to terminal    │",
		"│   3 - Easy, 80x25              │",
		"│   4 - Hard, 80x25              │",
		"│                                │",
		"│   q - Quit                     │",
		"╰────────────────────────────────╯",
	}
)

// Score board and info panel labels
const (
	LabelScore   = "Score"
	LabelSpeed   = "Speed"
	LabelLast    = "last"
	LabelBest    = "best"
	LabelAutoFit = "Full"

	// ScoreDigits is the right-aligned width of numbers on the score board
	ScoreDigits = 4
)
