package core

// Difficulty selects the turning rule of a game
type Difficulty uint8

const (
	// DifficultyEasy rejects 180 degree turns
	DifficultyEasy Difficulty = iota
	// DifficultyHard accepts every turn
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	}
	return "Unknown"
}

// SizeMode selects how the board is sized
type SizeMode uint8

const (
	// SizeAuto fits the board to the terminal and follows resizes
	SizeAuto SizeMode = iota
	// SizeFixed pins the board to 80x25
	SizeFixed
)

func (m SizeMode) String() string {
	switch m {
	case SizeAuto:
		return "auto"
	case SizeFixed:
		return "fixed"
	}
	return "unknown"
}

// Difficulties and SizeModes enumerate every game mode combination
var (
	Difficulties = [...]Difficulty{DifficultyEasy, DifficultyHard}
	SizeModes    = [...]SizeMode{SizeAuto, SizeFixed}
)
