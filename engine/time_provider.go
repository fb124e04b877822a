package engine

import "time"

// Clock supplies time and the throttle sleep to the game loop
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

// NewSystemClock creates a new monotonic clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses the calling goroutine
func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
