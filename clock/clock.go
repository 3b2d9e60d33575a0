package clock

import (
	"sync"
	"time"
)

// Provider abstracts the time source so menu timestamps and smoothing
// can run against a controllable clock in tests.
type Provider interface {
	Now() time.Time
}

// Monotonic provides the real system time with monotonic clock readings.
type Monotonic struct{}

// NewMonotonic creates a real time provider.
func NewMonotonic() *Monotonic {
	return &Monotonic{}
}

// Now returns the current time with monotonic clock reading.
func (p *Monotonic) Now() time.Time {
	return time.Now()
}

// Mock provides a controllable time source for testing.
type Mock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMock creates a mock provider starting at the given time.
func NewMock(startTime time.Time) *Mock {
	return &Mock{currentTime: startTime}
}

// Now returns the current mocked time.
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock.
func (m *Mock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
