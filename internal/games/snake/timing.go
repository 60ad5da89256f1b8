package snake

// Gate is a periodic trigger driven by an external microsecond clock. It
// guarantees a lower bound on the spacing between firings; missed periods
// are absorbed, not replayed.
type Gate struct {
	Interval int64
	last     int64
}

// NewGate creates a gate that first fires once Interval has elapsed after time zero.
func NewGate(interval int64) Gate {
	return Gate{Interval: interval}
}

// Ready reports whether more than Interval has elapsed since the last Mark.
func (g *Gate) Ready(now int64) bool {
	return now-g.last > g.Interval
}

// Mark records a firing at now.
func (g *Gate) Mark(now int64) {
	g.last = now
}

// minPollInterval keeps the polling loop from spinning.
const minPollInterval = 1_000

// PollInterval returns how often a loop should sample the gates so neither
// cadence is held back by the other.
func PollInterval(intervals ...int64) int64 {
	shortest := int64(0)
	for _, iv := range intervals {
		if shortest == 0 || iv < shortest {
			shortest = iv
		}
	}
	return max(shortest/4, minPollInterval)
}
