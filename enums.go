package enginetypes

import (
	"strconv"
	"strings"
)

// Enumerations are carried on the wire as their integer value.

// WrapMode is how an AnimationCurve extrapolates past its first or last key.
type WrapMode int32

const (
	WrapModeDefault      WrapMode = 0
	WrapModeOnce         WrapMode = 1
	WrapModeClamp        WrapMode = 1 // same value as WrapModeOnce
	WrapModeLoop         WrapMode = 2
	WrapModePingPong     WrapMode = 4
	WrapModeClampForever WrapMode = 8
)

// String returns the name of m. WrapModeOnce and WrapModeClamp are both "Once".
func (m WrapMode) String() string {
	switch m {
	case WrapModeDefault:
		return "Default"
	case WrapModeOnce:
		return "Once"
	case WrapModeLoop:
		return "Loop"
	case WrapModePingPong:
		return "PingPong"
	case WrapModeClampForever:
		return "ClampForever"
	default:
		return "WrapMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// GradientMode is how a Gradient blends between keys.
type GradientMode int32

const (
	GradientModeBlend GradientMode = iota
	GradientModeFixed
)

// String returns the name of m.
func (m GradientMode) String() string {
	switch m {
	case GradientModeBlend:
		return "Blend"
	case GradientModeFixed:
		return "Fixed"
	default:
		return "GradientMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// CollisionDetectionMode2D is how a 2D rigidbody detects collisions.
type CollisionDetectionMode2D int32

const (
	CollisionDetectionMode2DDiscrete   CollisionDetectionMode2D = 0
	CollisionDetectionMode2DContinuous CollisionDetectionMode2D = 1

	// Deprecated: use CollisionDetectionMode2DDiscrete, which it equals.
	CollisionDetectionMode2DNone = CollisionDetectionMode2DDiscrete
)

// String returns the name of m.
func (m CollisionDetectionMode2D) String() string {
	switch m {
	case CollisionDetectionMode2DDiscrete:
		return "Discrete"
	case CollisionDetectionMode2DContinuous:
		return "Continuous"
	default:
		return "CollisionDetectionMode2D(" + strconv.Itoa(int(m)) + ")"
	}
}

// RigidbodyConstraints2D is a set of flags restricting a 2D rigidbody's motion.
type RigidbodyConstraints2D int32

const (
	RigidbodyConstraints2DNone            RigidbodyConstraints2D = 0
	RigidbodyConstraints2DFreezePositionX RigidbodyConstraints2D = 1 << 0
	RigidbodyConstraints2DFreezePositionY RigidbodyConstraints2D = 1 << 1
	RigidbodyConstraints2DFreezeRotation  RigidbodyConstraints2D = 1 << 2

	RigidbodyConstraints2DFreezePosition = RigidbodyConstraints2DFreezePositionX | RigidbodyConstraints2DFreezePositionY
	RigidbodyConstraints2DFreezeAll      = RigidbodyConstraints2DFreezePosition | RigidbodyConstraints2DFreezeRotation
)

// Has returns true if every flag in flags is set in c.
func (c RigidbodyConstraints2D) Has(flags RigidbodyConstraints2D) bool {
	return c&flags == flags
}

// String returns the flag names joined with '|', using the composite names where they apply.
func (c RigidbodyConstraints2D) String() string {
	switch c {
	case RigidbodyConstraints2DNone:
		return "None"
	case RigidbodyConstraints2DFreezeAll:
		return "FreezeAll"
	}

	var names []string
	rest := c
	if rest.Has(RigidbodyConstraints2DFreezePosition) {
		names = append(names, "FreezePosition")
		rest &^= RigidbodyConstraints2DFreezePosition
	}
	for _, flag := range []struct {
		flag RigidbodyConstraints2D
		name string
	}{
		{RigidbodyConstraints2DFreezePositionX, "FreezePositionX"},
		{RigidbodyConstraints2DFreezePositionY, "FreezePositionY"},
		{RigidbodyConstraints2DFreezeRotation, "FreezeRotation"},
	} {
		if rest.Has(flag.flag) {
			names = append(names, flag.name)
			rest &^= flag.flag
		}
	}
	if rest != 0 {
		names = append(names, strconv.Itoa(int(rest)))
	}
	return strings.Join(names, "|")
}

// RigidbodyInterpolation2D is how a 2D rigidbody's rendered position is smoothed between physics steps.
type RigidbodyInterpolation2D int32

const (
	RigidbodyInterpolation2DNone RigidbodyInterpolation2D = iota
	RigidbodyInterpolation2DInterpolate
	RigidbodyInterpolation2DExtrapolate
)

// String formats i as "(x, y, z)".
func (i RigidbodyInterpolation2D) String() string {
	switch i {
	case RigidbodyInterpolation2DNone:
		return "None"
	case RigidbodyInterpolation2DInterpolate:
		return "Interpolate"
	case RigidbodyInterpolation2DExtrapolate:
		return "Extrapolate"
	default:
		return "RigidbodyInterpolation2D(" + strconv.Itoa(int(i)) + ")"
	}
}
