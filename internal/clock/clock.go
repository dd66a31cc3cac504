package clock

import (
	"sync"
	"time"
)

// Clock abstracts the wall clock so sessions can be driven deterministically
type Clock interface {
	Now() time.Time
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// SimulatedClock is a manually advanced clock, safe for concurrent use
type SimulatedClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{current: start}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the simulated time forward by d
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}
