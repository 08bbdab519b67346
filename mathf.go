package enginetypes

import "github.com/chewxy/math32"

const rad2Deg = 180 / math32.Pi

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clamp01(v float32) float32 { return clamp(v, 0, 1) }

// lerpUnclamped interpolates from a to b by t, extrapolating outside [0, 1].
func lerpUnclamped(a, b, t float32) float32 { return a + (b-a)*t }
