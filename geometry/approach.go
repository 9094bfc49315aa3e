package geometry

import (
	"cmp"
	"math"
)

// MoveTowards returns current moved towards target by at most maxDelta, without passing it.
func MoveTowards(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

func Clamp[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
