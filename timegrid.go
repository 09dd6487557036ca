package missions

import (
	"fmt"
	"time"
)

// TimeGrid is an ordered, strictly increasing sequence of sample timestamps
// at a fixed cadence, anchored on an epoch.
type TimeGrid struct {
	Epoch   time.Time
	Cadence time.Duration
	Times   []time.Time
}

// Len returns the number of samples.
func (g TimeGrid) Len() int {
	return len(g.Times)
}

// NewTimeGrid builds a grid of the requested number of samples starting at
// the epoch. A cadence or sample count of zero or less is a configuration
// error, not a degenerate grid.
func NewTimeGrid(epoch time.Time, cadence time.Duration, samples int) (TimeGrid, error) {
	if cadence <= 0 {
		return TimeGrid{}, fmt.Errorf("degenerate cadence %s", cadence)
	}
	if samples <= 0 {
		return TimeGrid{}, fmt.Errorf("invalid sample count %d", samples)
	}
	times := make([]time.Time, samples)
	for i := range times {
		times[i] = epoch.Add(time.Duration(i) * cadence)
	}
	return TimeGrid{Epoch: epoch, Cadence: cadence, Times: times}, nil
}

// NewSingleOrbitGrid builds a one-day grid truncated to a single orbit: only
// the samples whose elapsed time since the epoch does not exceed the orbital
// period are kept. The mean motion is in rad/min, as returned by
// KeplerianFromAltitudes.
func NewSingleOrbitGrid(epoch time.Time, cadence time.Duration, meanMotion float64) (TimeGrid, error) {
	if cadence <= 0 {
		return TimeGrid{}, fmt.Errorf("degenerate cadence %s", cadence)
	}
	if meanMotion <= 0 {
		return TimeGrid{}, fmt.Errorf("invalid mean motion %f rad/min", meanMotion)
	}
	period := PeriodFromMeanMotion(meanMotion)
	day := int(24 * time.Hour / cadence)
	times := make([]time.Time, 0, day)
	for i := 0; i < day; i++ {
		elapsed := time.Duration(i) * cadence
		if elapsed > period {
			break
		}
		times = append(times, epoch.Add(elapsed))
	}
	return TimeGrid{Epoch: epoch, Cadence: cadence, Times: times}, nil
}
