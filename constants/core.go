package constants

// Game Loop Timing Constants
const (
	// MillisPerSecond is the numerator of the tick interval formula (interval = 1000 / speed)
	MillisPerSecond = 1000

	// VerticalSpeedDivisor slows vertical movement because terminal cells are taller than wide
	VerticalSpeedDivisor = 1.6

	// MinEffectiveSpeed keeps the tick interval defined when vertical slowdown truncates to zero
	MinEffectiveSpeed = 1
)

// Input Buffering
const (
	// InputQueueSize is the capacity of the translated key byte channel
	InputQueueSize = 256
)
