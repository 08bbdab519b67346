package enginetypes

// GradientColorKey is a color stop of a Gradient, at Time in [0, 1].
type GradientColorKey struct {
	Color Color
	Time  float32
}

// NewGradientColorKey returns the stop. It is the decode entry point.
func NewGradientColorKey(col Color, time float32) GradientColorKey {
	return GradientColorKey{Color: col, Time: time}
}

// GradientAlphaKey is an alpha stop of a Gradient, at Time in [0, 1].
type GradientAlphaKey struct {
	Alpha float32
	Time  float32
}

// NewGradientAlphaKey returns the stop. It is the decode entry point.
func NewGradientAlphaKey(alpha, time float32) GradientAlphaKey {
	return GradientAlphaKey{Alpha: alpha, Time: time}
}

// Gradient blends colors and alphas along [0, 1].
// The color and alpha keys are independent; neither is sorted nor checked against the other.
// It has no decode entry point; decoders assign its fields to a zero Gradient.
type Gradient struct {
	ColorKeys []GradientColorKey
	AlphaKeys []GradientAlphaKey
	Mode      GradientMode
}

// Clone returns a copy of g that shares nothing with it.
func (g Gradient) Clone() Gradient {
	if g.ColorKeys != nil {
		g.ColorKeys = append(make([]GradientColorKey, 0, len(g.ColorKeys)), g.ColorKeys...)
	}
	if g.AlphaKeys != nil {
		g.AlphaKeys = append(make([]GradientAlphaKey, 0, len(g.AlphaKeys)), g.AlphaKeys...)
	}
	return g
}

// Equals returns true if g and o have the same mode and exactly equal keys in the same order.
func (g Gradient) Equals(o Gradient) bool {
	if g.Mode != o.Mode || len(g.ColorKeys) != len(o.ColorKeys) || len(g.AlphaKeys) != len(o.AlphaKeys) {
		return false
	}
	for i := range g.ColorKeys {
		if g.ColorKeys[i] != o.ColorKeys[i] {
			return false
		}
	}
	for i := range g.AlphaKeys {
		if g.AlphaKeys[i] != o.AlphaKeys[i] {
			return false
		}
	}
	return true
}
