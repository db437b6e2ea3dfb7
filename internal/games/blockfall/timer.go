package blockfall

import "time"

// tickUnit is the duration of one abstract time unit in the speed formula.
const tickUnit = time.Millisecond

// speedNumerator is divided by the speed to get the tick interval in units.
const speedNumerator = 1_000_000

// Timer describes the repeating fall timer a driver should run.
// Every arm or cancel bumps Gen; ticks carrying an older Gen are stale.
type Timer struct {
	Gen      uint64
	Interval time.Duration
	Armed    bool
}

// IntervalForSpeed converts a speed into a tick interval.
// Non-positive speeds have no interval and report false.
func IntervalForSpeed(speed int) (time.Duration, bool) {
	if speed <= 0 {
		return 0, false
	}
	units := max(speedNumerator/speed, 1)
	return time.Duration(units) * tickUnit, true
}
