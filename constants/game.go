package constants

// Initial Game State
const (
	// InitialSpeed is the starting ticks-per-second of every game
	InitialSpeed = 10

	// InitialScore is the starting score of every game
	InitialScore = 0
)

// InitialSnakeBody is the starting body, head first, heading East
var InitialSnakeBody = [][2]int{{3, 1}, {2, 1}, {1, 1}}

// Apple Tiers
const (
	// LowTierPoints is the score and growth awarded by a low-tier apple
	LowTierPoints = 1

	// LowTierSpeed is the speed increment awarded by a low-tier apple
	LowTierSpeed = 1

	// HighTierPoints is the score and growth awarded by a high-tier apple
	HighTierPoints = 2

	// HighTierSpeed is the speed increment awarded by a high-tier apple
	HighTierSpeed = 2
)

// Board Geometry
const (
	// FixedScreenWidth is the total screen width in fixed-size mode
	FixedScreenWidth = 80

	// FixedScreenHeight is the total screen height in fixed-size mode, info panel included
	FixedScreenHeight = 25

	// InfoPanelHeight is the number of rows the info panel occupies below the frame
	InfoPanelHeight = 3

	// MinFrameSize is the smallest frame edge that still leaves a one-cell field
	MinFrameSize = 3

	// FrameOriginX is the absolute column of the game frame's top-left corner
	FrameOriginX = 1

	// FrameOriginY is the absolute row of the game frame's top-left corner
	FrameOriginY = 1
)
