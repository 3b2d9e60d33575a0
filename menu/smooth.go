package menu

import (
	"math"
	"time"
)

// DefaultScrollRate is the exponential approach rate (per second) used
// by menus when none is configured.
const DefaultScrollRate = 12.0

// Smooth moves current toward target with an exponential approach.
// The step is a pure function of (current, target, dt, rate), so the
// result is frame-rate independent: two half-steps land where one full
// step does.
func Smooth(current, target float64, dt time.Duration, rate float64) float64 {
	if dt <= 0 || rate <= 0 {
		return current
	}
	f := 1 - math.Exp(-rate*dt.Seconds())
	return current + (target-current)*f
}
