package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains the launch parameters handed to the engine.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	FPS     int   // Render rate, frames per second (1-100)
	Speed   int   // Movement speed (1-10)
	Seed    int64 // RNG seed; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with the documented defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
		Speed:   5,
		Seed:    0,
	}
}

// RandomSource yields uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandom returns a seeded RandomSource. A zero seed is replaced by the
// current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Clock reports monotonic time in microseconds.
type Clock interface {
	Now() int64
}

// MonotonicClock measures microseconds elapsed since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns elapsed microseconds. time.Since uses the monotonic reading.
func (c *MonotonicClock) Now() int64 {
	return time.Since(c.start).Microseconds()
}

// ManualClock is a Clock advanced by hand, for tests and replays.
type ManualClock struct {
	T int64
}

// Now returns the current manual time.
func (c *ManualClock) Now() int64 {
	return c.T
}

// Advance moves the clock forward by d microseconds.
func (c *ManualClock) Advance(d int64) {
	c.T += d
}
