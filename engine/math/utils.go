package math

import "golang.org/x/exp/constraints"

// Clamp bounds v to [low, high]. Any ordered type works, time.Duration
// included, which is what the frame pacer clamps its sleep with.
func Clamp[T constraints.Ordered](v, low, high T) T {
	switch {
	case v < low:
		return low
	case v > high:
		return high
	default:
		return v
	}
}
