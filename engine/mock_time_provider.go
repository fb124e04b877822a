package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing.
// Sleep advances virtual time instead of blocking.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	slept       time.Duration
	sleeps      int
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleep advances virtual time and records the call
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	m.slept += d
	m.sleeps++
}

// Slept returns the total slept duration and number of Sleep calls
func (m *MockClock) Slept() (time.Duration, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept, m.sleeps
}
